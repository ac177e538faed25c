// Package filter narrows tutor and subject lists by search criteria.
//
// Every function is pure: inputs are never modified, outputs are newly allocated
// (never nil) and keep the relative order of the input.
package filter

import (
	"sort"

	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	"github.com/kailas-cloud/tutordex/internal/domain/search/match"
	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
)

// Directory filters tutors the way the tutor directory does (substring text match).
func Directory(tutors []tutor.Tutor, c criteria.Criteria) []tutor.Tutor {
	return Tutors(tutors, c, match.SubstringMatch{})
}

// Tutors keeps the tutors that pass every active criterion.
//
//   - text: first name, last name or any subject name matches the term
//   - subjects: the tutor teaches every selected subject (case-insensitive equality)
//   - rating: rating, with a missing rating read as 0, is at least the threshold
func Tutors(tutors []tutor.Tutor, c criteria.Criteria, s match.Strategy) []tutor.Tutor {
	out := make([]tutor.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if MatchesTutor(t, c, s) {
			out = append(out, t)
		}
	}
	return out
}

// MatchesTutor reports whether t passes every active criterion of c.
func MatchesTutor(t tutor.Tutor, c criteria.Criteria, s match.Strategy) bool {
	return matchesText(t, c, s) && matchesSubjects(t, c) && matchesRating(t, c)
}

func matchesText(t tutor.Tutor, c criteria.Criteria, s match.Strategy) bool {
	if !c.HasSearchTerm() {
		return true
	}
	term := c.SearchTerm()
	if s.MatchTitle(term, t.FirstName()) || s.MatchTitle(term, t.LastName()) {
		return true
	}
	for _, name := range t.SubjectNames() {
		if s.MatchTitle(term, name) {
			return true
		}
	}
	return false
}

func matchesSubjects(t tutor.Tutor, c criteria.Criteria) bool {
	for _, want := range c.SelectedSubjects() {
		if !t.HasSubject(want) {
			return false
		}
	}
	return true
}

func matchesRating(t tutor.Tutor, c criteria.Criteria) bool {
	minRating, ok := c.MinRating()
	if !ok {
		return true
	}
	return t.RatingOrZero() >= minRating
}

// SortByRating returns a copy of tutors ordered by rating, highest first.
// Missing ratings sort as 0; ties keep their input order.
func SortByRating(tutors []tutor.Tutor) []tutor.Tutor {
	out := make([]tutor.Tutor, len(tutors))
	copy(out, tutors)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RatingOrZero() > out[j].RatingOrZero()
	})
	return out
}

// Explore filters the catalog the way the explore screen does (prefix-word match).
func Explore(catalog []subject.Subject, term string) []subject.Subject {
	return Subjects(catalog, term, match.PrefixWordMatch{})
}

// Subjects keeps the catalog entries whose title or description matches term.
// An empty term keeps everything.
func Subjects(catalog []subject.Subject, term string, s match.Strategy) []subject.Subject {
	out := make([]subject.Subject, 0, len(catalog))
	for _, sub := range catalog {
		if term == "" || s.MatchTitle(term, sub.Title()) || s.MatchText(term, sub.Description()) {
			out = append(out, sub)
		}
	}
	return out
}
