// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Permissions is the POSIX nine-bit owner/group/other read-write-execute set.
// The flag values match the low nine bits of os.FileMode.
type Permissions uint16

// Permission flags.
const (
	OwnerRead  Permissions = 0o400
	OwnerWrite Permissions = 0o200
	OwnerExec  Permissions = 0o100
	GroupRead  Permissions = 0o040
	GroupWrite Permissions = 0o020
	GroupExec  Permissions = 0o010
	OtherRead  Permissions = 0o004
	OtherWrite Permissions = 0o002
	OtherExec  Permissions = 0o001

	// PermissionMask covers all nine flags.
	PermissionMask Permissions = 0o777
)

// symbolicLayout is the display order of the flags in the symbolic form.
var symbolicLayout = [9]struct { //nolint:gochecknoglobals
	flag Permissions
	char byte
}{
	{OwnerRead, 'r'}, {OwnerWrite, 'w'}, {OwnerExec, 'x'},
	{GroupRead, 'r'}, {GroupWrite, 'w'}, {GroupExec, 'x'},
	{OtherRead, 'r'}, {OtherWrite, 'w'}, {OtherExec, 'x'},
}

// FromOctal decodes a three digit triple written in decimal notation, e.g. 755.
// Each digit is taken modulo 10 and only its low three bits are consulted.
func FromOctal(octal int) Permissions {
	owner := (octal / 100) % 10
	group := (octal / 10) % 10
	other := octal % 10

	var perms Permissions

	perms |= digitBits(owner, OwnerRead, OwnerWrite, OwnerExec)
	perms |= digitBits(group, GroupRead, GroupWrite, GroupExec)
	perms |= digitBits(other, OtherRead, OtherWrite, OtherExec)

	return perms
}

func digitBits(digit int, read, write, exec Permissions) Permissions {
	var perms Permissions

	if digit&4 != 0 {
		perms |= read
	}

	if digit&2 != 0 {
		perms |= write
	}

	if digit&1 != 0 {
		perms |= exec
	}

	return perms
}

// ParseOctal parses the textual chmod argument.
func ParseOctal(text string) (Permissions, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid octal mode %q", ErrInvalidArgument, text)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: invalid octal mode %q", ErrInvalidArgument, text)
	}

	return FromOctal(value), nil
}

// ParseSymbolic parses the nine character form, e.g. "rwxr-xr-x".
func ParseSymbolic(text string) (Permissions, error) {
	if len(text) != len(symbolicLayout) {
		return 0, fmt.Errorf("%w: symbolic permissions must be %d characters, got %q",
			ErrInvalidArgument, len(symbolicLayout), text)
	}

	var perms Permissions

	for i, slot := range symbolicLayout {
		switch text[i] {
		case slot.char:
			perms |= slot.flag
		case '-':
		default:
			return 0, fmt.Errorf("%w: unexpected %q at position %d in %q",
				ErrInvalidArgument, text[i], i, text)
		}
	}

	return perms, nil
}

// FromFileMode extracts the nine permission bits of a platform mode.
func FromFileMode(mode os.FileMode) Permissions {
	return Permissions(mode.Perm()) & PermissionMask
}

// FileMode converts to a platform mode suitable for os.Chmod.
func (p Permissions) FileMode() os.FileMode {
	return os.FileMode(p & PermissionMask)
}

// Has reports whether every flag in mask is set.
func (p Permissions) Has(mask Permissions) bool {
	return p&mask == mask
}

// Octal returns the three digit triple, e.g. 644.
func (p Permissions) Octal() int {
	bits := int(p & PermissionMask)

	return (bits>>6)*100 + ((bits>>3)&7)*10 + bits&7
}

// String returns the nine character symbolic form.
func (p Permissions) String() string {
	var b strings.Builder

	b.Grow(len(symbolicLayout))

	for _, slot := range symbolicLayout {
		if p.Has(slot.flag) {
			b.WriteByte(slot.char)
		} else {
			b.WriteByte('-')
		}
	}

	return b.String()
}
