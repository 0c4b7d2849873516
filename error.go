// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seqtreap

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidRange indicates that a positional range passed to a
	// sequence operation is malformed or extends beyond the end of the
	// sequence.
	ErrInvalidRange ErrorCode = iota
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidRange: "ErrInvalidRange",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a sequence treap error.  The caller can use type
// assertions to access the ErrorCode field in order to ascertain the specific
// reason for the failure.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// seqError creates an Error given a set of arguments.
func seqError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
