package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
