package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrency indicates a currency code that is not in the registry.
// It wraps ErrValidation so callers can treat both the same way.
var ErrUnsupportedCurrency = fmt.Errorf("%w: unsupported currency", ErrValidation)
