package domain

import "errors"

var (
	// ErrTutorNotFound signals a missing tutor record.
	ErrTutorNotFound = errors.New("tutor not found")
	// ErrInvalidCriteria signals filter criteria that cannot be applied.
	ErrInvalidCriteria = errors.New("invalid filter criteria")
	// ErrSourceUnavailable signals that the tutor data source could not be queried.
	ErrSourceUnavailable = errors.New("tutor source unavailable")
)
