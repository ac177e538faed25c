package match

import "testing"

func TestPrefixWordMatch(t *testing.T) {
	s := PrefixWordMatch{}
	tests := []struct {
		name      string
		term      string
		value     string
		wantTitle bool
		wantText  bool
	}{
		{"title prefix case-insensitive", "MATH", "Mathematics", true, true},
		{"inner word is not a title prefix", "sci", "Computer Science", false, true},
		{"comma separated words", "geo", "Calculus,Geometry", false, true},
		{"mixed separators", "alg", "Calculus, \tAlgebra", false, true},
		{"suffix never matches", "ology", "Biology", false, false},
		{"no match", "xyz", "Biology, Chemistry", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.MatchTitle(tt.term, tt.value); got != tt.wantTitle {
				t.Errorf("MatchTitle(%q, %q) = %v", tt.term, tt.value, got)
			}
			if got := s.MatchText(tt.term, tt.value); got != tt.wantText {
				t.Errorf("MatchText(%q, %q) = %v", tt.term, tt.value, got)
			}
		})
	}
}

func TestSubstringMatch(t *testing.T) {
	s := SubstringMatch{}
	tests := []struct {
		term  string
		value string
		want  bool
	}{
		{"MATH", "Mathematics", true},
		{"ology", "Biology", true},
		{"an", "Ann", true},
		{"x", "", false},
		{"ann", "An", false},
	}
	for _, tt := range tests {
		if got := s.MatchTitle(tt.term, tt.value); got != tt.want {
			t.Errorf("MatchTitle(%q, %q) = %v, want %v", tt.term, tt.value, got, tt.want)
		}
		if got := s.MatchText(tt.term, tt.value); got != tt.want {
			t.Errorf("MatchText(%q, %q) = %v, want %v", tt.term, tt.value, got, tt.want)
		}
	}
}

func TestStrategies_Mode(t *testing.T) {
	if got := (PrefixWordMatch{}).Mode(); got != PrefixWord {
		t.Errorf("PrefixWordMatch.Mode() = %q", got)
	}
	if got := (SubstringMatch{}).Mode(); got != Substring {
		t.Errorf("SubstringMatch.Mode() = %q", got)
	}
}
