// Package apperr holds the errors shared by the usecases and their mapping to gRPC statuses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrMissingMerchant   = errors.New("missing merchant context")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrPINRejected       = errors.New("pin rejected")
	ErrPromotionActive   = errors.New("promotion is active")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSKUExists         = errors.New("sku already exists")
	ErrBusy              = errors.New("resource busy")
)

type notFoundError struct {
	entity string
}

func (e *notFoundError) Error() string { return e.entity + " not found" }
func (e *notFoundError) Unwrap() error { return ErrNotFound }

// NotFound reports a missing entity; errors.Is(err, ErrNotFound) holds.
func NotFound(entity string) error {
	return &notFoundError{entity: entity}
}

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
