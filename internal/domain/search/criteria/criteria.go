package criteria

import (
	"fmt"
	"math"
	"strings"

	"github.com/kailas-cloud/tutordex/internal/domain"
)

// RatingOptions are the thresholds offered by the rating selector, highest first.
var RatingOptions = []int{5, 4, 3, 2, 1}

// Criteria is the set of directory filters. Every field is independently optional:
// an empty search term, no selected subjects and a nil minimum rating are inactive.
type Criteria struct {
	searchTerm       string
	selectedSubjects []string
	minRating        *float64
}

// New validates and creates Criteria.
// Subject names are de-duplicated case-insensitively, keeping the first spelling seen; blank names are dropped.
// minRating must lie within [0, domain.MaxRating].
func New(searchTerm string, subjects []string, minRating *float64) (Criteria, error) {
	if minRating != nil {
		v := *minRating
		if math.IsNaN(v) || v < 0 || v > domain.MaxRating {
			return Criteria{}, fmt.Errorf("%w: min rating must be between 0 and %g, got %g",
				domain.ErrInvalidCriteria, domain.MaxRating, v)
		}
		minRating = &v
	}
	return Criteria{
		searchTerm:       searchTerm,
		selectedSubjects: dedupe(subjects),
		minRating:        minRating,
	}, nil
}

// SearchTerm returns the free-text term verbatim.
func (c Criteria) SearchTerm() string { return c.searchTerm }

// SelectedSubjects returns a copy of the selected subject names.
func (c Criteria) SelectedSubjects() []string {
	out := make([]string, len(c.selectedSubjects))
	copy(out, c.selectedSubjects)
	return out
}

// MinRating returns the rating threshold and whether it is set.
func (c Criteria) MinRating() (float64, bool) {
	if c.minRating == nil {
		return 0, false
	}
	return *c.minRating, true
}

// HasSearchTerm reports whether the text filter is active.
func (c Criteria) HasSearchTerm() bool { return c.searchTerm != "" }

// HasSubjects reports whether the subject filter is active.
func (c Criteria) HasSubjects() bool { return len(c.selectedSubjects) > 0 }

// HasMinRating reports whether the rating filter is active.
func (c Criteria) HasMinRating() bool { return c.minRating != nil }

// Empty reports whether no filter is active.
func (c Criteria) Empty() bool {
	return !c.HasSearchTerm() && !c.HasSubjects() && !c.HasMinRating()
}

// IsSelected reports whether name is among the selected subjects (case-insensitive).
func (c Criteria) IsSelected(name string) bool {
	for _, s := range c.selectedSubjects {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// WithMinRating returns a copy with the threshold replaced; nil clears it.
func (c Criteria) WithMinRating(minRating *float64) (Criteria, error) {
	return New(c.searchTerm, c.selectedSubjects, minRating)
}

// ToggleSubject returns a copy with name added, or removed if already selected.
func (c Criteria) ToggleSubject(name string) Criteria {
	out := c.clone()
	if !c.IsSelected(name) {
		out.selectedSubjects = dedupe(append(out.selectedSubjects, name))
		return out
	}
	kept := out.selectedSubjects[:0]
	for _, s := range out.selectedSubjects {
		if !strings.EqualFold(s, name) {
			kept = append(kept, s)
		}
	}
	out.selectedSubjects = kept
	return out
}

// Cleared returns empty criteria (the "Clear Filters" action).
func (Criteria) Cleared() Criteria { return Criteria{} }

func (c Criteria) clone() Criteria {
	out := Criteria{searchTerm: c.searchTerm, selectedSubjects: c.SelectedSubjects()}
	if c.minRating != nil {
		v := *c.minRating
		out.minRating = &v
	}
	return out
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		k := strings.ToLower(n)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, n)
	}
	return out
}
