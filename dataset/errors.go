// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"errors"
	"fmt"
)

// Error describes a failure to read a points file.
type Error struct {
	Type    ErrorType
	Path    string
	Line    int // 1-based, 0 when the error isn't tied to a line
	Message string
	Err     error
}

// ErrorType classifies dataset errors.
type ErrorType int

const (
	// ErrorTypeUnknown unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeOpen the file could not be opened or read.
	ErrorTypeOpen
	// ErrorTypeParse the content is not a valid points file.
	ErrorTypeParse
)

func (e *Error) Error() string {
	msg := e.Message

	switch {
	case e.Path != "" && e.Line > 0:
		msg = fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
	case e.Path != "":
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	case e.Line > 0:
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsOpenError reports whether err comes from opening or reading the input.
func IsOpenError(err error) bool {
	var dsErr *Error
	if errors.As(err, &dsErr) {
		return dsErr.Type == ErrorTypeOpen
	}

	return false
}

// IsParseError reports whether err comes from malformed input.
func IsParseError(err error) bool {
	var dsErr *Error
	if errors.As(err, &dsErr) {
		return dsErr.Type == ErrorTypeParse
	}

	return false
}

func parseError(line int, err error, format string, args ...any) *Error {
	return &Error{
		Type:    ErrorTypeParse,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
