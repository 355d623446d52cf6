package cmd

import "fmt"

// ArgumentError reports invalid or out-of-range user-supplied parameters.
// Its message is shown to the invoking user as is.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// Argumentf returns an *ArgumentError with a formatted message.
func Argumentf(format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// ServerError wraps an internal fault in command execution. It is logged for
// operators; users only ever see a generic message.
type ServerError struct {
	Err error
}

func (e *ServerError) Error() string {
	if e.Err == nil {
		return "internal server error"
	}
	return e.Err.Error()
}

func (e *ServerError) Unwrap() error { return e.Err }

// Internal wraps err as a *ServerError. A nil err stays nil.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &ServerError{Err: err}
}
