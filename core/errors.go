package core

import (
	"errors"
	"fmt"
)

// Error codes used throughout quire. Parsing and styling are lenient, so
// most of these end up in trace output rather than being returned to clients.
const (
	NOERROR     int = 0
	EMISSING    int = 122 // resource (font, color, table entry) does not exist
	EINVALID    int = 123 // input could not be interpreted
	EUNRESOLVED int = 124 // value cannot be reduced to a concrete quantity
	EINTERNAL   int = 125 // programming error
)

var codeText = map[int]string{
	NOERROR:     "OK",
	EMISSING:    "not found",
	EINVALID:    "invalid",
	EUNRESOLVED: "unresolved",
	EINTERNAL:   "internal error",
}

func errorText(code int) string {
	if t, ok := codeText[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError attaches a code and a message to a cause.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("[%d] %v", e.code, e.cause)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.cause)
}

func (e codedError) Unwrap() error       { return e.cause }
func (e codedError) ErrorCode() int      { return e.code }
func (e codedError) UserMessage() string { return e.msg }

// WrapError wraps err, attaching an error code and a formatted message.
// A nil err is replaced by a generic error for the code, so the result is
// never nil.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the code associated with an error.
// Errors without a code report EINTERNAL; nil reports NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the message associated with an error, falling back to
// the generic text for its code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) && e.UserMessage() != "" {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
