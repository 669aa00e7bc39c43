package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrFetch ErrorType = iota
	ErrDecode
	ErrPattern
	ErrMissingMatch
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrFetch:
		return "Fetch"
	case ErrDecode:
		return "Decode"
	case ErrPattern:
		return "Pattern"
	case ErrMissingMatch:
		return "MissingMatch"
	default:
		return "Unknown"
	}
}

// SWScanError represents an error while inspecting the update catalog
type SWScanError struct {
	Type    ErrorType
	Product string
	Err     error
}

// Error implements the error interface
func (e *SWScanError) Error() string {
	if e.Product != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Product, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *SWScanError) Unwrap() error {
	return e.Err
}

// NewError wraps err with the given type. A nil err yields nil.
func NewError(t ErrorType, product string, err error) error {
	if err == nil {
		return nil
	}
	return &SWScanError{Type: t, Product: product, Err: err}
}

// IsType reports whether any SWScanError in err's chain has type t.
func IsType(err error, t ErrorType) bool {
	var se *SWScanError
	for err != nil {
		if !errors.As(err, &se) {
			return false
		}
		if se.Type == t {
			return true
		}
		err = se.Err
	}
	return false
}

// WithProduct attributes err to product when err is an SWScanError that
// does not name a product yet. Other errors are returned unchanged.
func WithProduct(err error, product string) error {
	se, ok := err.(*SWScanError)
	if !ok || se.Product != "" {
		return err
	}
	attributed := *se
	attributed.Product = product
	return &attributed
}
