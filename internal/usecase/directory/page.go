package directory

import (
	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	"github.com/kailas-cloud/tutordex/internal/domain/search/filter"
	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
	"github.com/kailas-cloud/tutordex/internal/metrics"
)

// screenDirectory labels directory observations in metrics.
const screenDirectory = "directory"

// Page is the rating-ordered tutor list of one directory page view.
// It is never refetched; every criteria change filters the same snapshot.
type Page struct {
	tutors []tutor.Tutor
}

// NewPage wraps an already loaded list, ordering it by rating.
func NewPage(tutors []tutor.Tutor) Page {
	return Page{tutors: filter.SortByRating(tutors)}
}

// Tutors returns a copy of the unfiltered list.
func (p Page) Tutors() []tutor.Tutor {
	out := make([]tutor.Tutor, len(p.tutors))
	copy(out, p.tutors)
	return out
}

// Len returns the number of loaded tutors.
func (p Page) Len() int { return len(p.tutors) }

// Filter applies c to the snapshot.
func (p Page) Filter(c criteria.Criteria) []tutor.Tutor {
	results := filter.Directory(p.tutors, c)
	metrics.FilterResults.WithLabelValues(screenDirectory).Observe(float64(len(results)))
	return results
}
