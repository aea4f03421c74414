package triton

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrHTTP
	ErrServer
	ErrInference
	ErrParse
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// StatusError reports a non-2xx response from the server's health
// endpoint. It unwraps to ErrServer so callers can test with errors.Is
// and retrieve the status code with errors.As.
type StatusError struct {
	StatusCode int
	Message    string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrHTTP:
		return "request could not be completed"
	case ErrServer:
		return "server is not live"
	case ErrInference:
		return "inference request rejected"
	case ErrParse:
		return "unexpected response body"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return ErrServer
}
