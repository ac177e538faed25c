package tutordex

import "github.com/kailas-cloud/tutordex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrTutorNotFound     = domain.ErrTutorNotFound
	ErrInvalidQuery      = domain.ErrInvalidCriteria
	ErrSourceUnavailable = domain.ErrSourceUnavailable
)
