package tutor

import (
	"math"
	"strconv"
	"strings"
)

// StarCount is the size of the star scale shown on a tutor card.
const StarCount = 5

// Subject is a subject taught by a tutor.
type Subject struct {
	name string
}

// NewSubject creates a Subject.
func NewSubject(name string) Subject {
	return Subject{name: name}
}

// Name returns the subject name.
func (s Subject) Name() string { return s.name }

// Tutor is a verified-tutor record (immutable value object).
// Any field may be absent in the source document; absent values are zero values,
// except rating, which keeps "no rating yet" distinct from an explicit 0.
type Tutor struct {
	id        string
	firstName string
	lastName  string
	email     string
	subjects  []Subject
	rating    *float64
	verified  bool
}

// Reconstruct creates a Tutor without validation (storage hydration).
// rating == nil means the tutor has not been rated yet.
func Reconstruct(
	id, firstName, lastName, email string,
	subjects []Subject, rating *float64, verified bool,
) Tutor {
	var r *float64
	if rating != nil {
		v := *rating
		r = &v
	}
	return Tutor{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		subjects:  cloneSubjects(subjects),
		rating:    r,
		verified:  verified,
	}
}

// ID returns the identifier assigned by the data source.
func (t Tutor) ID() string { return t.id }

// FirstName returns the first name (may be empty).
func (t Tutor) FirstName() string { return t.firstName }

// LastName returns the last name (may be empty).
func (t Tutor) LastName() string { return t.lastName }

// Email returns the contact email (may be empty).
func (t Tutor) Email() string { return t.email }

// Verified reports whether the record is flagged as a verified tutor.
func (t Tutor) Verified() bool { return t.verified }

// Subjects returns a copy of the subject list.
func (t Tutor) Subjects() []Subject { return cloneSubjects(t.subjects) }

// SubjectNames returns the subject names in order.
func (t Tutor) SubjectNames() []string {
	names := make([]string, len(t.subjects))
	for i, s := range t.subjects {
		names[i] = s.name
	}
	return names
}

// HasSubject reports whether the tutor teaches name, compared case-insensitively.
func (t Tutor) HasSubject(name string) bool {
	for _, s := range t.subjects {
		if strings.EqualFold(s.name, name) {
			return true
		}
	}
	return false
}

// Rating returns the rating and whether one is present.
func (t Tutor) Rating() (float64, bool) {
	if t.rating == nil {
		return 0, false
	}
	return *t.rating, true
}

// RatingOrZero returns the rating, treating a missing rating as 0.
// Used for threshold comparisons and ordering.
func (t Tutor) RatingOrZero() float64 {
	if t.rating == nil {
		return 0
	}
	return *t.rating
}

// FullName returns first and last name separated by a space.
func (t Tutor) FullName() string {
	return strings.TrimSpace(t.firstName + " " + t.lastName)
}

// RatingLabel renders the rating for display: "No rating yet" or "<rating>/5".
func (t Tutor) RatingLabel() string {
	r, ok := t.Rating()
	if !ok {
		return "No rating yet"
	}
	return strconv.FormatFloat(r, 'f', -1, 64) + "/" + strconv.Itoa(StarCount)
}

// Stars returns the number of filled stars out of StarCount.
// Star i (0-based) is filled while i < rating.
func (t Tutor) Stars() int {
	r := t.RatingOrZero()
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	n := int(math.Ceil(r))
	if n > StarCount {
		return StarCount
	}
	return n
}

// FeaturedSubjects returns at most n leading subjects.
func (t Tutor) FeaturedSubjects(n int) []Subject {
	if n < 0 {
		n = 0
	}
	if n > len(t.subjects) {
		n = len(t.subjects)
	}
	return cloneSubjects(t.subjects[:n])
}

// SubjectsLabel joins subject names with ", ", or says none are listed.
func (t Tutor) SubjectsLabel() string {
	if len(t.subjects) == 0 {
		return "No subjects listed"
	}
	return strings.Join(t.SubjectNames(), ", ")
}

func cloneSubjects(s []Subject) []Subject {
	if s == nil {
		return nil
	}
	out := make([]Subject, len(s))
	copy(out, s)
	return out
}
