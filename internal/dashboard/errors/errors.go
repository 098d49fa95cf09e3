package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound = errors.New("server not found")
	ErrInvalidAddress = errors.New("invalid server address")
)

// NetworkError is returned when the inventory API could not be reached or did not answer in time.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HttpError is returned when the inventory API answered with a non-2xx status.
type HttpError struct {
	Op         string
	StatusCode int
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d", e.Op, e.StatusCode)
}

func NewNetworkError(op string, err error) error {
	return &NetworkError{
		Op:  op,
		Err: err,
	}
}

func NewHttpError(op string, statusCode int) error {
	return &HttpError{
		Op:         op,
		StatusCode: statusCode,
	}
}
