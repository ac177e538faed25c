package match

import (
	"strings"

	"github.com/kailas-cloud/tutordex/internal/domain/subject"
)

// Mode names a text match strategy.
type Mode string

// Match mode constants.
const (
	// PrefixWord is used by the explore screen.
	PrefixWord Mode = "prefix_word"
	// Substring is used by the tutor directory.
	Substring Mode = "substring"
)

// Strategy decides whether a search term matches a field.
// Titles are short single values (names, subject titles); text is free-form prose.
// Both comparisons are case-insensitive. Callers never pass an empty term.
type Strategy interface {
	Mode() Mode
	MatchTitle(term, value string) bool
	MatchText(term, value string) bool
}

// PrefixWordMatch matches a title that starts with the term,
// or text containing a whitespace/comma-delimited word that starts with the term.
type PrefixWordMatch struct{}

// Mode returns PrefixWord.
func (PrefixWordMatch) Mode() Mode { return PrefixWord }

// MatchTitle reports whether value starts with term.
func (PrefixWordMatch) MatchTitle(term, value string) bool {
	return strings.HasPrefix(strings.ToLower(value), strings.ToLower(term))
}

// MatchText reports whether any word of value starts with term.
func (PrefixWordMatch) MatchText(term, value string) bool {
	t := strings.ToLower(term)
	for _, w := range subject.Words(value) {
		if strings.HasPrefix(w, t) {
			return true
		}
	}
	return false
}

// SubstringMatch matches when the term occurs anywhere in the value.
type SubstringMatch struct{}

// Mode returns Substring.
func (SubstringMatch) Mode() Mode { return Substring }

// MatchTitle reports whether value contains term.
func (SubstringMatch) MatchTitle(term, value string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// MatchText reports whether value contains term.
func (s SubstringMatch) MatchText(term, value string) bool {
	return s.MatchTitle(term, value)
}
