package directory

import (
	"context"

	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
)

// Repository is the tutor data source.
type Repository interface {
	// ListVerified returns all verified tutors, unordered.
	ListVerified(ctx context.Context) ([]tutor.Tutor, error)
	Get(ctx context.Context, id string) (tutor.Tutor, error)
}
