package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tutordex/internal/domain"
	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
	logpkg "github.com/kailas-cloud/tutordex/internal/logger"
	"github.com/kailas-cloud/tutordex/internal/metrics"
)

// DefaultSubjectOptions are the subjects offered by the directory subject picker.
var DefaultSubjectOptions = []string{"Mathematics", "Science", "English", "History", "Computer Science"}

// Options describes the selectable filter values of the directory page.
type Options struct {
	Subjects []string
	Ratings  []int
}

// Service serves the tutor directory: one fetch per page load, then in-memory filtering.
type Service struct {
	repo           Repository
	subjectOptions []string
}

// New creates a directory service.
func New(repo Repository) *Service {
	return &Service{repo: repo, subjectOptions: DefaultSubjectOptions}
}

// WithSubjectOptions overrides the subject picker values. Empty keeps the defaults.
func (s *Service) WithSubjectOptions(opts []string) *Service {
	if len(opts) > 0 {
		s.subjectOptions = append([]string(nil), opts...)
	}
	return s
}

// Load fetches verified tutors once and orders them by rating, highest first.
// On failure it returns an empty page along with an error wrapping domain.ErrSourceUnavailable,
// so callers can still render (and filter) the empty state.
func (s *Service) Load(ctx context.Context) (Page, error) {
	start := time.Now()
	tutors, err := s.repo.ListVerified(ctx)
	metrics.SourceFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SourceFetchTotal.WithLabelValues("error").Inc()
		logpkg.FromContext(ctx).Error("Failed to fetch tutors", zap.Error(err))
		return Page{}, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	metrics.SourceFetchTotal.WithLabelValues("ok").Inc()

	return NewPage(tutors), nil
}

// Search loads a page and applies c to it.
// The returned slice is never nil, even when err is set.
func (s *Service) Search(ctx context.Context, c criteria.Criteria) ([]tutor.Tutor, error) {
	page, err := s.Load(ctx)
	return page.Filter(c), err
}

// Get returns a verified tutor by ID.
func (s *Service) Get(ctx context.Context, id string) (tutor.Tutor, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTutorNotFound) {
			return tutor.Tutor{}, err
		}
		return tutor.Tutor{}, fmt.Errorf("get tutor %s: %w", id, err)
	}
	if !t.Verified() {
		return tutor.Tutor{}, domain.ErrTutorNotFound
	}
	return t, nil
}

// FilterOptions returns the picker values for subjects and minimum rating.
func (s *Service) FilterOptions() Options {
	return Options{
		Subjects: append([]string(nil), s.subjectOptions...),
		Ratings:  append([]int(nil), criteria.RatingOptions...),
	}
}
