package textstore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// Input validation errors. All of them match ErrInvalidInput with errors.Is.
var (
	ErrMissingText     = fmt.Errorf("%w: text is required", ErrInvalidInput)
	ErrMissingFilename = fmt.Errorf("%w: filename is required", ErrInvalidInput)
	ErrInvalidFilename = fmt.Errorf("%w: invalid filename", ErrInvalidInput)
)
