package catalog

import "errors"

// Domain-specific errors for the catalog package.
var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrBackendUnavailable = errors.New("catalog backend unavailable")
	ErrInvalidPriceRange  = errors.New("min price exceeds max price")
	ErrNegativePrice      = errors.New("price bounds must be non-negative")
	ErrTooManyRecords     = errors.New("too many records in query")
)
