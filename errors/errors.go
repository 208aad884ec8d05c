// Package errors defines the application error types and their mapping to
// process exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code classifies an error for exit-code mapping and tests.
type Code string

const (
	CodeInvalidInput          Code = "invalid_input"
	CodeTranscriptUnavailable Code = "transcript_unavailable"
	CodeNetworkError          Code = "network_error"
	CodeProviderUnavailable   Code = "provider_unavailable"
	CodeAuthentication        Code = "authentication_error"
	CodeUpstream              Code = "upstream_error"
)

type Error struct {
	Code    Code
	Message string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, op string, err error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func InvalidInput(op string, err error, message string) *Error {
	return New(CodeInvalidInput, op, err, message)
}

func TranscriptUnavailable(op string, err error, message string) *Error {
	return New(CodeTranscriptUnavailable, op, err, message)
}

func NetworkError(op string, err error, message string) *Error {
	return New(CodeNetworkError, op, err, message)
}

func ProviderUnavailable(op string, err error, message string) *Error {
	return New(CodeProviderUnavailable, op, err, message)
}

func Authentication(op string, err error, message string) *Error {
	return New(CodeAuthentication, op, err, message)
}

func Upstream(op string, err error, message string) *Error {
	return New(CodeUpstream, op, err, message)
}

// CodeOf returns the classification of err, or "" for plain errors.
func CodeOf(err error) Code {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

func IsInvalidInput(err error) bool { return Is(err, CodeInvalidInput) }

func IsTranscriptUnavailable(err error) bool { return Is(err, CodeTranscriptUnavailable) }

func IsProviderUnavailable(err error) bool { return Is(err, CodeProviderUnavailable) }

// Exit codes for each error class. 0 is success; 1 is reserved for
// unclassified failures.
const (
	ExitOK                    = 0
	ExitFailure               = 1
	ExitInvalidInput          = 2
	ExitTranscriptUnavailable = 3
	ExitNetworkError          = 4
	ExitProviderUnavailable   = 5
	ExitAuthentication        = 6
	ExitUpstream              = 7
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch CodeOf(err) {
	case CodeInvalidInput:
		return ExitInvalidInput
	case CodeTranscriptUnavailable:
		return ExitTranscriptUnavailable
	case CodeNetworkError:
		return ExitNetworkError
	case CodeProviderUnavailable:
		return ExitProviderUnavailable
	case CodeAuthentication:
		return ExitAuthentication
	case CodeUpstream:
		return ExitUpstream
	default:
		return ExitFailure
	}
}
