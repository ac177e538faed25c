package tutordex

import (
	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
)

// Tutor is a user record as seen by the directory.
type Tutor struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Subjects  []string
	Rating    *float64 // nil = not rated yet
	Verified  bool
}

// FullName joins first and last name.
func (t Tutor) FullName() string { return toDomainTutor(t).FullName() }

// RatingLabel renders the rating, e.g. "4.5/5" or "No rating yet".
func (t Tutor) RatingLabel() string { return toDomainTutor(t).RatingLabel() }

// Stars returns the number of filled stars out of five.
func (t Tutor) Stars() int { return toDomainTutor(t).Stars() }

// Subject is an explore catalog entry.
type Subject struct {
	Icon        string
	Title       string
	Description string
}

// TutorsPath is the directory URL pre-filtered by the subject.
func (s Subject) TutorsPath() string { return toDomainSubject(s).TutorsPath() }

// Query narrows the tutor directory. Zero fields are inactive.
type Query struct {
	Search    string   // substring of first name, last name or a subject name
	Subjects  []string // every listed subject is required
	MinRating *float64 // unrated tutors count as 0
}

// FilterOptions are the selectable subject and rating values.
type FilterOptions struct {
	Subjects []string
	Ratings  []int
}

// Rating returns a pointer to r, for Query.MinRating and Tutor.Rating.
func Rating(r float64) *float64 { return &r }

// DefaultCatalog returns the built-in explore catalog.
func DefaultCatalog() []Subject {
	return fromDomainSubjects(subject.DefaultCatalog())
}

// ToggleSubject returns a copy of q with name required, or no longer required
// when it was already selected (case-insensitive).
func (q Query) ToggleSubject(name string) Query {
	return queryFromCriteria(q.withoutRating().ToggleSubject(name), q.MinRating)
}

// WithMinRating returns a copy of q with the threshold replaced; nil removes it.
// The threshold must lie within [0, 5].
func (q Query) WithMinRating(r *float64) (Query, error) {
	c, err := q.withoutRating().WithMinRating(r)
	if err != nil {
		return q, err
	}
	out := queryFromCriteria(c, nil)
	if v, ok := c.MinRating(); ok {
		out.MinRating = &v
	}
	return out, nil
}

// Cleared returns a query with every filter removed (the "Clear Filters" action).
func (q Query) Cleared() Query {
	return queryFromCriteria(q.withoutRating().Cleared(), nil)
}

func (q Query) criteria() (criteria.Criteria, error) {
	return criteria.New(q.Search, q.Subjects, q.MinRating)
}

// withoutRating never fails: only the rating is validated.
func (q Query) withoutRating() criteria.Criteria {
	c, _ := criteria.New(q.Search, q.Subjects, nil)
	return c
}

func queryFromCriteria(c criteria.Criteria, minRating *float64) Query {
	out := Query{Search: c.SearchTerm()}
	if c.HasSubjects() {
		out.Subjects = c.SelectedSubjects()
	}
	if minRating != nil {
		v := *minRating
		out.MinRating = &v
	}
	return out
}

func toDomainTutor(t Tutor) tutor.Tutor {
	subs := make([]tutor.Subject, len(t.Subjects))
	for i, s := range t.Subjects {
		subs[i] = tutor.NewSubject(s)
	}
	return tutor.Reconstruct(t.ID, t.FirstName, t.LastName, t.Email, subs, t.Rating, t.Verified)
}

func toDomainTutors(ts []Tutor) []tutor.Tutor {
	out := make([]tutor.Tutor, len(ts))
	for i, t := range ts {
		out[i] = toDomainTutor(t)
	}
	return out
}

func fromDomainTutor(t tutor.Tutor) Tutor {
	out := Tutor{
		ID:        t.ID(),
		FirstName: t.FirstName(),
		LastName:  t.LastName(),
		Email:     t.Email(),
		Subjects:  t.SubjectNames(),
		Verified:  t.Verified(),
	}
	if r, ok := t.Rating(); ok {
		out.Rating = &r
	}
	return out
}

func fromDomainTutors(ts []tutor.Tutor) []Tutor {
	out := make([]Tutor, len(ts))
	for i, t := range ts {
		out[i] = fromDomainTutor(t)
	}
	return out
}

func toDomainSubject(s Subject) subject.Subject {
	return subject.New(s.Icon, s.Title, s.Description)
}

func toDomainSubjects(ss []Subject) []subject.Subject {
	out := make([]subject.Subject, len(ss))
	for i, s := range ss {
		out[i] = toDomainSubject(s)
	}
	return out
}

func fromDomainSubjects(ss []subject.Subject) []Subject {
	out := make([]Subject, len(ss))
	for i, s := range ss {
		out[i] = Subject{Icon: s.Icon(), Title: s.Title(), Description: s.Description()}
	}
	return out
}
