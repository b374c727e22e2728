// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
)

// Error categories reported by explorer operations.
var (
	ErrNotFound        = errors.New("not found")
	ErrOperationFailed = errors.New("operation failed")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingOperand  = errors.New("missing operand")
)

// ErrorKind classifies an OpError.
type ErrorKind int

const (
	// KindOperationFailed means the underlying filesystem call failed.
	KindOperationFailed ErrorKind = iota
	// KindNotFound means the target path does not exist.
	KindNotFound
	// KindInvalidArgument means the command input was malformed.
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidArgument:
		return "invalid argument"
	case KindOperationFailed:
		return "operation failed"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidArgument:
		return ErrInvalidArgument
	default:
		return ErrOperationFailed
	}
}

// OpError is the result of a failed explorer operation.
type OpError struct {
	Op   string // command name, e.g. "cp"
	Path string // path the failure refers to, may be empty
	Kind ErrorKind
	Err  error // underlying cause, may be nil
}

// NewOpError creates an OpError.
func NewOpError(op string, kind ErrorKind, path string, err error) *OpError {
	return &OpError{
		Op:   op,
		Path: path,
		Kind: kind,
		Err:  err,
	}
}

func (e *OpError) Error() string {
	msg := e.Op + ": " + e.Kind.String()

	if e.Path != "" {
		msg += ": " + e.Path
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Is matches the category sentinel in addition to the wrapped cause.
func (e *OpError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the category of err. Errors that are not OpErrors count as
// operation failures.
func KindOf(err error) ErrorKind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}

	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrMissingOperand) {
		return KindInvalidArgument
	}

	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}

	return KindOperationFailed
}

// Cause returns the underlying error message without the operation prefix.
func Cause(err error) string {
	var opErr *OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return opErr.Err.Error()
	}

	if err == nil {
		return ""
	}

	return err.Error()
}
