package subject

import (
	"net/url"
	"strings"
	"unicode"
)

// Subject is an entry of the explore catalog.
type Subject struct {
	icon        string
	title       string
	description string
}

// New creates a catalog Subject.
func New(icon, title, description string) Subject {
	return Subject{icon: icon, title: title, description: description}
}

// Icon returns the display icon.
func (s Subject) Icon() string { return s.icon }

// Title returns the subject title.
func (s Subject) Title() string { return s.title }

// Description returns the free-text description.
func (s Subject) Description() string { return s.description }

// TutorsPath is the directory page pre-filtered by this subject.
func (s Subject) TutorsPath() string {
	return "/tutors?subject=" + url.QueryEscape(s.title)
}

// Words lower-cases text and splits it on runs of whitespace and commas.
func Words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// DefaultCatalog returns the built-in explore catalog.
func DefaultCatalog() []Subject {
	return []Subject{
		New("🧬", "Science", "Biology, Environmental Science, Chemistry, etc."),
		New("📚", "Mathematics", "Calculus, Algebra, Geometry, etc."),
		New("💻", "Computer Science", "Programming, Algorithms, Data Structures, Web Development, etc."),
		New("🧪", "Chemistry", "Organic Chemistry, Inorganic Chemistry, Biochemistry, etc."),
	}
}
