package entity

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrPayloadTooLarge   = errors.New("payload too large")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStore             = errors.New("media store error")
)

// DetailError pairs a sentinel kind with the message returned to API clients.
type DetailError struct {
	Kind   error
	Detail string
}

func NewDetailError(kind error, format string, args ...interface{}) *DetailError {
	return &DetailError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *DetailError) Error() string {
	return e.Detail
}

func (e *DetailError) Unwrap() error {
	return e.Kind
}
