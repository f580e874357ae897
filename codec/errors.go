// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"errors"
	"fmt"
)

// Code categorizes why a parse or serialize operation failed.
type Code string

const (
	// CodeInvalidToken means a token did not match the shape demanded of
	// it (a boolean that was not T/F, an enum identifier outside the
	// closed set).
	CodeInvalidToken Code = "invalid_token"
	// CodeUnexpectedEnd means a field was demanded but the token stream
	// was already exhausted.
	CodeUnexpectedEnd Code = "unexpected_end"
	// CodeParseIntError means the integer scalar parser rejected the
	// token.
	CodeParseIntError Code = "parse_int_error"
	// CodeParseFloatError is the float equivalent of CodeParseIntError.
	CodeParseFloatError Code = "parse_float_error"
	// CodeNotAList means a list-shaped field's token did not begin with
	// '[' and end with ']'.
	CodeNotAList Code = "not_a_list"
	// CodeReaderNotExhausted means a top-level parse left unread tokens
	// after the event was fully decoded, indicating schema drift.
	CodeReaderNotExhausted Code = "reader_not_exhausted"
	// CodeUnsupportedOperation means the caller asked for a capability
	// outside the codec's remit (map (de)serialization).
	CodeUnsupportedOperation Code = "unsupported_operation"
	// CodeCustom wraps an error surfaced by caller-supplied logic rather
	// than the codec engine itself.
	CodeCustom Code = "custom"
)

// Error is the codec's structured error type: a closed Code, a
// human-readable Message, and an optional wrapped Cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "codec: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New builds an *Error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds an *Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches code and message to an existing error as its Cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// GetCode extracts the Code from any error, returning CodeCustom if err
// is not (or does not wrap) a *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return CodeCustom
}
