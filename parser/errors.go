// SPDX-License-Identifier: MIT

package parser

import "fmt"

// ParseError reports malformed input. Msg is human-readable and includes the
// node path ("root.operands[1]"); Err, when set, is the underlying cause.
type ParseError struct {
	Msg string
	Err error
}

// Error implements error.
func (e *ParseError) Error() string { return e.Msg }

// Unwrap exposes the cause (e.g. expr.ErrUnknownOp, matrix.ErrNaNInf).
func (e *ParseError) Unwrap() error { return e.Err }

func errorf(cause error, format string, args ...interface{}) *ParseError {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		msg += ": " + cause.Error()
	}

	return &ParseError{Msg: msg, Err: cause}
}
