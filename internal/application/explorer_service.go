// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package application implements the explorer operations on top of the
// domain ports.
package application

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/janderssonse/filex/internal/domain"
	"github.com/janderssonse/filex/internal/stringutil"
)

// Operation names as typed at the prompt.
const (
	OpList     = "ls"
	OpChdir    = "cd"
	OpTouch    = "touch"
	OpMkdir    = "mkdir"
	OpRemove   = "rm"
	OpCopy     = "cp"
	OpMove     = "mv"
	OpFind     = "find"
	OpPerms    = "perms"
	OpChmod    = "chmod"
	parentName = ".."
)

// DirPermDefault is the mode requested for directories created by mkdir.
// The process umask still applies.
const DirPermDefault = 0o755

var (
	errCopyIntoSelf = errors.New("cannot copy a directory into itself")
	errSameFile     = errors.New("source and destination are the same file")
)

// ExplorerService runs explorer operations against a working directory.
// It holds no session state: the working directory is passed to every call.
type ExplorerService struct {
	fs       domain.FileSystem
	progress domain.ProgressReporter
}

// NewExplorerService creates an explorer service. A nil reporter discards
// progress output.
func NewExplorerService(fsys domain.FileSystem, progress domain.ProgressReporter) *ExplorerService {
	if progress == nil {
		progress = domain.NopProgress{}
	}

	return &ExplorerService{
		fs:       fsys,
		progress: progress,
	}
}

// Resolve interprets name relative to cwd unless it is absolute.
func Resolve(cwd, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}

	return filepath.Join(cwd, name)
}

// List returns the immediate children of cwd sorted by name.
func (s *ExplorerService) List(cwd string) ([]domain.Entry, error) {
	children, err := s.fs.ReadDir(cwd)
	if err != nil {
		return nil, classify(OpList, cwd, err)
	}

	entries := make([]domain.Entry, 0, len(children))

	for _, child := range children {
		entries = append(entries, s.describe(cwd, child))
	}

	return entries, nil
}

// describe follows symbolic links for kind, size and permissions and falls
// back to the link itself when the target cannot be resolved.
func (s *ExplorerService) describe(dir string, child fs.DirEntry) domain.Entry {
	path := filepath.Join(dir, child.Name())
	entry := domain.Entry{
		Name: child.Name(),
		Path: path,
		Kind: domain.EntryFile,
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		info, err = child.Info()
	}

	if err != nil {
		if child.IsDir() {
			entry.Kind = domain.EntryDirectory
		}

		return entry
	}

	if info.IsDir() {
		entry.Kind = domain.EntryDirectory
	} else if info.Mode().IsRegular() {
		entry.Size = info.Size()
	}

	entry.Perms = domain.FromFileMode(info.Mode())

	return entry
}

// ChangeDir resolves target against cwd and returns the new canonical
// working directory. On error cwd stays valid and unchanged.
func (s *ExplorerService) ChangeDir(cwd, target string) (string, error) {
	if target == "" {
		return cwd, domain.NewOpError(OpChdir, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	var next string
	if target == parentName {
		// The parent of the root is the root itself.
		next = filepath.Dir(cwd)
	} else {
		next = Resolve(cwd, target)
	}

	info, err := s.fs.Stat(next)
	if err != nil || !info.IsDir() {
		return cwd, domain.NewOpError(OpChdir, domain.KindNotFound, next, err)
	}

	canonical, err := s.fs.Canonical(next)
	if err != nil {
		return cwd, domain.NewOpError(OpChdir, domain.KindOperationFailed, next, err)
	}

	return canonical, nil
}

// Touch creates an empty file, truncating any existing one.
func (s *ExplorerService) Touch(cwd, name string) (string, error) {
	if name == "" {
		return "", domain.NewOpError(OpTouch, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	path := Resolve(cwd, name)

	if err := s.fs.CreateFile(path); err != nil {
		return path, domain.NewOpError(OpTouch, domain.KindOperationFailed, path, err)
	}

	s.progress.Progressf("touch: %s", path)

	return path, nil
}

// Mkdir creates exactly one directory level.
func (s *ExplorerService) Mkdir(cwd, name string) (string, error) {
	if name == "" {
		return "", domain.NewOpError(OpMkdir, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	path := Resolve(cwd, name)

	if err := s.fs.Mkdir(path, DirPermDefault); err != nil {
		return path, domain.NewOpError(OpMkdir, domain.KindOperationFailed, path, err)
	}

	s.progress.Progressf("mkdir: %s", path)

	return path, nil
}

// Remove deletes a file, or a directory together with all its descendants.
func (s *ExplorerService) Remove(cwd, name string) (string, error) {
	if name == "" {
		return "", domain.NewOpError(OpRemove, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	path := Resolve(cwd, name)

	if _, err := s.fs.Stat(path); err != nil {
		return path, classify(OpRemove, path, err)
	}

	if err := s.removePath(path); err != nil {
		return path, domain.NewOpError(OpRemove, domain.KindOperationFailed, path, err)
	}

	s.progress.Progressf("rm: %s", path)

	return path, nil
}

// removePath removes a symbolic link itself rather than its target.
func (s *ExplorerService) removePath(path string) error {
	info, err := s.fs.Lstat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return s.removeTree(path)
	}

	return s.fs.Remove(path)
}

// removeTree deletes root and its subtree. Files are removed while the
// directories are enumerated in pre-order; the directories themselves are
// removed afterwards in reverse order so children always go first.
func (s *ExplorerService) removeTree(root string) error {
	var dirs []string

	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dirs = append(dirs, dir)

		children, err := s.fs.ReadDir(dir)
		if err != nil {
			return err
		}

		for _, child := range children {
			path := filepath.Join(dir, child.Name())

			if child.IsDir() {
				stack = append(stack, path)

				continue
			}

			if err := s.fs.Remove(path); err != nil {
				return err
			}
		}
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		if err := s.fs.Remove(dirs[i]); err != nil {
			return err
		}
	}

	return nil
}

// Copy copies a file, or a directory recursively. Existing files at the
// destination are overwritten and an existing destination directory is
// merged into.
func (s *ExplorerService) Copy(cwd, srcName, destName string) error {
	if srcName == "" || destName == "" {
		return domain.NewOpError(OpCopy, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	src := Resolve(cwd, srcName)
	dest := Resolve(cwd, destName)

	info, err := s.fs.Stat(src)
	if err != nil {
		return classify(OpCopy, src, err)
	}

	if err := s.checkCopyTarget(src, dest, info); err != nil {
		return domain.NewOpError(OpCopy, domain.KindInvalidArgument, dest, err)
	}

	if err := s.copyPath(src, dest, info); err != nil {
		return domain.NewOpError(OpCopy, domain.KindOperationFailed, src, err)
	}

	s.progress.Progressf("cp: %s -> %s", src, dest)

	return nil
}

func (s *ExplorerService) copyPath(src, dest string, info fs.FileInfo) error {
	if info.IsDir() {
		return s.copyTree(src, dest)
	}

	return s.fs.CopyFile(src, dest, info.Mode().Perm())
}

// checkCopyTarget rejects copies that would overwrite the source itself or
// recurse into their own output.
func (s *ExplorerService) checkCopyTarget(src, dest string, srcInfo fs.FileInfo) error {
	if !srcInfo.IsDir() {
		if destInfo, err := s.fs.Stat(dest); err == nil && os.SameFile(srcInfo, destInfo) {
			return errSameFile
		}

		return nil
	}

	srcCanonical, err := s.fs.Canonical(src)
	if err != nil {
		return nil //nolint:nilerr // the copy itself reports unreadable sources
	}

	destParent, err := s.fs.Canonical(filepath.Dir(dest))
	if err != nil {
		return nil //nolint:nilerr // the copy itself reports a missing parent
	}

	destCanonical := filepath.Join(destParent, filepath.Base(dest))
	if isWithin(srcCanonical, destCanonical) {
		return errCopyIntoSelf
	}

	return nil
}

type copyJob struct {
	src  string
	dest string
	// ancestors holds the canonical paths of src and the directories above
	// it in this copy.
	ancestors []string
}

// copyTree copies the directory src onto dest using an explicit stack.
// Symbolic links are followed. A link back to a directory on its own path is
// skipped; other aliases of the same directory are copied in full.
func (s *ExplorerService) copyTree(src, dest string) error {
	root := copyJob{src: src, dest: dest}
	if canonical, err := s.fs.Canonical(src); err == nil {
		root.ancestors = []string{canonical}
	}

	stack := []copyJob{root}

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := s.fs.Stat(job.src)
		if err != nil {
			return err
		}

		if err := s.ensureDir(job.dest, info.Mode().Perm()); err != nil {
			return err
		}

		children, err := s.fs.ReadDir(job.src)
		if err != nil {
			return err
		}

		// Reverse push keeps the copy order equal to the name order.
		for i := len(children) - 1; i >= 0; i-- {
			name := children[i].Name()
			childSrc := filepath.Join(job.src, name)
			childDest := filepath.Join(job.dest, name)

			childInfo, err := s.fs.Stat(childSrc)
			if err != nil {
				return err
			}

			if !childInfo.IsDir() {
				if err := s.fs.CopyFile(childSrc, childDest, childInfo.Mode().Perm()); err != nil {
					return err
				}

				continue
			}

			child := copyJob{src: childSrc, dest: childDest, ancestors: job.ancestors}

			if canonical, err := s.fs.Canonical(childSrc); err == nil {
				if slices.Contains(job.ancestors, canonical) {
					continue
				}

				child.ancestors = append(slices.Clone(job.ancestors), canonical)
			}

			stack = append(stack, child)
		}
	}

	return nil
}

// ensureDir creates dir, accepting an existing directory for merge copies.
func (s *ExplorerService) ensureDir(dir string, perm fs.FileMode) error {
	err := s.fs.Mkdir(dir, perm)
	if err == nil {
		return nil
	}

	if info, statErr := s.fs.Stat(dir); statErr == nil && info.IsDir() {
		return nil
	}

	return err
}

// Move renames src to dest. Across devices the move degrades to a copy
// followed by a delete, which is not atomic.
func (s *ExplorerService) Move(cwd, srcName, destName string) error {
	if srcName == "" || destName == "" {
		return domain.NewOpError(OpMove, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	src := Resolve(cwd, srcName)
	dest := Resolve(cwd, destName)

	info, err := s.fs.Stat(src)
	if err != nil {
		return classify(OpMove, src, err)
	}

	err = s.fs.Rename(src, dest)
	if errors.Is(err, syscall.EXDEV) {
		s.progress.Progressf("mv: %s and %s are on different devices, copying", src, dest)

		err = s.moveAcrossDevices(src, dest, info)
	}

	if err != nil {
		return domain.NewOpError(OpMove, domain.KindOperationFailed, src, err)
	}

	s.progress.Progressf("mv: %s -> %s", src, dest)

	return nil
}

func (s *ExplorerService) moveAcrossDevices(src, dest string, info fs.FileInfo) error {
	if err := s.copyPath(src, dest, info); err != nil {
		return err
	}

	return s.removePath(src)
}

// Find walks the subtree of cwd depth-first in name order and passes the
// path of every entry whose name contains query to emit. The walk stops at
// the first enumeration error; entries already emitted stay emitted.
// Symbolic links to directories are reported but not descended.
func (s *ExplorerService) Find(cwd, query string, emit func(path string)) error {
	type node struct {
		path string
		name string
		dir  bool
	}

	var stack []node

	expand := func(dir string) error {
		children, err := s.fs.ReadDir(dir)
		if err != nil {
			return domain.NewOpError(OpFind, domain.KindOperationFailed, dir, err)
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, node{
				path: filepath.Join(dir, children[i].Name()),
				name: children[i].Name(),
				dir:  children[i].IsDir(),
			})
		}

		return nil
	}

	if err := expand(cwd); err != nil {
		return err
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if stringutil.Contains(current.name, query) {
			emit(current.path)
		}

		if current.dir {
			if err := expand(current.path); err != nil {
				return err
			}
		}
	}

	return nil
}

// Permissions returns the permission set of name, following symbolic links.
func (s *ExplorerService) Permissions(cwd, name string) (domain.Permissions, error) {
	if name == "" {
		return 0, domain.NewOpError(OpPerms, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	path := Resolve(cwd, name)

	info, err := s.fs.Stat(path)
	if err != nil {
		return 0, classify(OpPerms, path, err)
	}

	return domain.FromFileMode(info.Mode()), nil
}

// Chmod replaces all nine permission bits of name with the decoded octal
// triple and returns the applied set.
func (s *ExplorerService) Chmod(cwd, name, octal string) (domain.Permissions, error) {
	if name == "" {
		return 0, domain.NewOpError(OpChmod, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	path := Resolve(cwd, name)

	if _, err := s.fs.Stat(path); err != nil {
		return 0, classify(OpChmod, path, err)
	}

	if octal == "" {
		return 0, domain.NewOpError(OpChmod, domain.KindInvalidArgument, "", domain.ErrMissingOperand)
	}

	perms, err := domain.ParseOctal(octal)
	if err != nil {
		return 0, domain.NewOpError(OpChmod, domain.KindInvalidArgument, path, err)
	}

	if err := s.fs.Chmod(path, perms.FileMode()); err != nil {
		return 0, domain.NewOpError(OpChmod, domain.KindOperationFailed, path, err)
	}

	s.progress.Progressf("chmod: %s %s", path, perms)

	return perms, nil
}

// classify maps a stat or enumeration error to an OpError.
func classify(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewOpError(op, domain.KindNotFound, path, err)
	}

	return domain.NewOpError(op, domain.KindOperationFailed, path, err)
}

// isWithin reports whether path equals dir or lies below it.
func isWithin(dir, path string) bool {
	if path == dir {
		return true
	}

	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
