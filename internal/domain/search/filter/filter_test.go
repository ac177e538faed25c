package filter

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	"github.com/kailas-cloud/tutordex/internal/domain/search/match"
	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
)

func floatPtr(f float64) *float64 { return &f }

func subjects(names ...string) []tutor.Subject {
	out := make([]tutor.Subject, len(names))
	for i, n := range names {
		out[i] = tutor.NewSubject(n)
	}
	return out
}

func mustCriteria(t *testing.T, term string, subs []string, minRating *float64) criteria.Criteria {
	t.Helper()
	c, err := criteria.New(term, subs, minRating)
	if err != nil {
		t.Fatalf("criteria.New: %v", err)
	}
	return c
}

func ids(tutors []tutor.Tutor) []string {
	out := make([]string, len(tutors))
	for i, t := range tutors {
		out[i] = t.ID()
	}
	return out
}

func titles(subs []subject.Subject) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.Title()
	}
	return out
}

func fixtureTutors() []tutor.Tutor {
	return []tutor.Tutor{
		tutor.Reconstruct("ann", "Ann", "Lee", "", subjects("Mathematics", "Science"), floatPtr(4), true),
		tutor.Reconstruct("bo", "Bo", "Smith", "", subjects("Mathematics"), floatPtr(5), true),
		tutor.Reconstruct("cy", "Cy", "", "", nil, nil, true),
		tutor.Reconstruct("di", "", "Mathers", "", subjects("History"), floatPtr(0), true),
		tutor.Reconstruct("ed", "Ed", "Ng", "", subjects("english", "HISTORY"), floatPtr(2.5), true),
	}
}

// --- identity ---

func TestDirectory_EmptyCriteriaIsIdentity(t *testing.T) {
	in := fixtureTutors()
	got := Directory(in, criteria.Criteria{})
	if !reflect.DeepEqual(ids(got), ids(in)) {
		t.Fatalf("got %v, want %v", ids(got), ids(in))
	}
}

func TestDirectory_EmptyInput(t *testing.T) {
	cases := []criteria.Criteria{
		{},
		mustCriteria(t, "math", []string{"Science"}, floatPtr(3)),
	}
	for _, c := range cases {
		for _, in := range [][]tutor.Tutor{nil, {}} {
			got := Directory(in, c)
			if got == nil {
				t.Fatal("expected non-nil empty slice")
			}
			if len(got) != 0 {
				t.Fatalf("expected empty result, got %v", ids(got))
			}
		}
	}
}

func TestDirectory_DoesNotMutateInput(t *testing.T) {
	in := fixtureTutors()
	before := ids(in)
	_ = Directory(in, mustCriteria(t, "bo", nil, nil))
	_ = SortByRating(in)
	if !reflect.DeepEqual(ids(in), before) {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

// --- text match ---

func TestDirectory_SearchTerm(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"first name substring", "nn", []string{"ann"}},
		{"last name substring", "mith", []string{"bo"}},
		{"subject substring upper case", "MATH", []string{"ann", "bo", "di"}},
		{"subject name mixed case", "hist", []string{"di", "ed"}},
		{"no match", "zzz", []string{}},
		{"tutor without subjects still matches by name", "cy", []string{"cy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Directory(fixtureTutors(), mustCriteria(t, tt.term, nil, nil))
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("got %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestDirectory_SubstringMatchesSubjectMathematics(t *testing.T) {
	in := []tutor.Tutor{tutor.Reconstruct("x", "", "", "", subjects("Mathematics"), nil, true)}
	got := Directory(in, mustCriteria(t, "MATH", nil, nil))
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

// --- subject set ---

func TestDirectory_SubjectsAreConjunctive(t *testing.T) {
	in := []tutor.Tutor{
		tutor.Reconstruct("math-only", "", "", "", subjects("Math"), nil, true),
		tutor.Reconstruct("both", "", "", "", subjects("science", "MATH"), nil, true),
	}
	got := Directory(in, mustCriteria(t, "", []string{"Math", "Science"}, nil))
	if !reflect.DeepEqual(ids(got), []string{"both"}) {
		t.Fatalf("got %v, want [both]", ids(got))
	}
}

func TestDirectory_SubjectsExactNotSubstring(t *testing.T) {
	in := []tutor.Tutor{tutor.Reconstruct("a", "", "", "", subjects("Computer Science"), nil, true)}
	got := Directory(in, mustCriteria(t, "", []string{"Science"}, nil))
	if len(got) != 0 {
		t.Fatalf("subject selection must use equality, got %v", ids(got))
	}
}

func TestDirectory_SubjectsWithoutSubjectList(t *testing.T) {
	in := []tutor.Tutor{tutor.Reconstruct("a", "A", "", "", nil, floatPtr(5), true)}
	got := Directory(in, mustCriteria(t, "", []string{"History"}, nil))
	if len(got) != 0 {
		t.Fatal("tutor without subjects must not pass a subject filter")
	}
}

// --- rating ---

func TestDirectory_MissingRatingIsZero(t *testing.T) {
	in := []tutor.Tutor{tutor.Reconstruct("unrated", "", "", "", nil, nil, true)}

	if got := Directory(in, mustCriteria(t, "", nil, floatPtr(1))); len(got) != 0 {
		t.Error("unrated tutor must be excluded at min rating 1")
	}
	if got := Directory(in, mustCriteria(t, "", nil, floatPtr(0))); len(got) != 1 {
		t.Error("unrated tutor must be included at min rating 0")
	}
	if got := Directory(in, mustCriteria(t, "", nil, nil)); len(got) != 1 {
		t.Error("unrated tutor must be included without a rating filter")
	}
}

func TestDirectory_RatingThresholdInclusive(t *testing.T) {
	got := Directory(fixtureTutors(), mustCriteria(t, "", nil, floatPtr(4)))
	if !reflect.DeepEqual(ids(got), []string{"ann", "bo"}) {
		t.Fatalf("got %v", ids(got))
	}
}

// --- sort ---

func TestSortByRating_DirectoryExample(t *testing.T) {
	in := []tutor.Tutor{
		tutor.Reconstruct("Ann", "Ann", "", "", nil, floatPtr(4), true),
		tutor.Reconstruct("Bo", "Bo", "", "", nil, floatPtr(5), true),
	}
	sorted := SortByRating(in)
	if !reflect.DeepEqual(ids(sorted), []string{"Bo", "Ann"}) {
		t.Fatalf("sorted = %v", ids(sorted))
	}
	got := Directory(sorted, mustCriteria(t, "", nil, floatPtr(5)))
	if !reflect.DeepEqual(ids(got), []string{"Bo"}) {
		t.Fatalf("filtered = %v", ids(got))
	}
}

func TestSortByRating_StableAndMissingAsZero(t *testing.T) {
	in := []tutor.Tutor{
		tutor.Reconstruct("z1", "", "", "", nil, floatPtr(0), true),
		tutor.Reconstruct("n1", "", "", "", nil, nil, true),
		tutor.Reconstruct("hi", "", "", "", nil, floatPtr(3), true),
		tutor.Reconstruct("n2", "", "", "", nil, nil, true),
	}
	got := SortByRating(in)
	want := []string{"hi", "z1", "n1", "n2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}

// --- soundness / completeness ---

func TestTutors_SoundAndComplete(t *testing.T) {
	in := fixtureTutors()
	all := []criteria.Criteria{
		{},
		mustCriteria(t, "a", nil, nil),
		mustCriteria(t, "", []string{"mathematics"}, nil),
		mustCriteria(t, "", []string{"History", "English"}, nil),
		mustCriteria(t, "", nil, floatPtr(2.5)),
		mustCriteria(t, "math", []string{"Science"}, floatPtr(3)),
	}
	strategies := []match.Strategy{match.SubstringMatch{}, match.PrefixWordMatch{}}

	for _, s := range strategies {
		for _, c := range all {
			got := Tutors(in, c, s)
			kept := make(map[string]bool, len(got))
			for _, tu := range got {
				kept[tu.ID()] = true
				if !MatchesTutor(tu, c, s) {
					t.Errorf("%s: %q kept but fails criteria", s.Mode(), tu.ID())
				}
			}
			for _, tu := range in {
				if !kept[tu.ID()] && MatchesTutor(tu, c, s) {
					t.Errorf("%s: %q dropped but passes criteria", s.Mode(), tu.ID())
				}
			}
		}
	}
}

func TestTutors_Deterministic(t *testing.T) {
	c := mustCriteria(t, "m", []string{"Mathematics"}, floatPtr(1))
	first := ids(Directory(fixtureTutors(), c))
	for i := 0; i < 5; i++ {
		if got := ids(Directory(fixtureTutors(), c)); !reflect.DeepEqual(got, first) {
			t.Fatalf("non-deterministic result: %v vs %v", got, first)
		}
	}
}

// --- explore ---

func exploreCatalog() []subject.Subject {
	return []subject.Subject{
		subject.New("", "Science", "Biology, Environmental Science, Chemistry"),
		subject.New("", "Mathematics", "Calculus, Algebra, Geometry"),
	}
}

func TestExplore_Examples(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"bio", []string{"Science"}},
		{"calc", []string{"Mathematics"}},
		{"MATH", []string{"Mathematics"}},
		{"", []string{"Science", "Mathematics"}},
		{"ology", []string{}},
		{"sci", []string{"Science"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Explore(exploreCatalog(), tt.term)
			if !reflect.DeepEqual(titles(got), tt.want) {
				t.Errorf("got %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestExplore_TitleIsWholeStringPrefix(t *testing.T) {
	cat := []subject.Subject{subject.New("", "Computer Science", "Programming, Algorithms")}
	if got := Explore(cat, "science"); len(got) != 0 {
		t.Fatalf("title must match from its start, got %v", titles(got))
	}
	if got := Explore(cat, "comp"); len(got) != 1 {
		t.Fatalf("expected title prefix match, got %v", titles(got))
	}
}

func TestExplore_DefaultCatalog(t *testing.T) {
	got := Explore(subject.DefaultCatalog(), "chem")
	want := []string{"Science", "Chemistry"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
}

func TestSubjects_StrategiesDiffer(t *testing.T) {
	cat := exploreCatalog()
	prefix := Subjects(cat, "ology", match.PrefixWordMatch{})
	substr := Subjects(cat, "ology", match.SubstringMatch{})
	if len(prefix) != 0 {
		t.Errorf("prefix-word: got %v", titles(prefix))
	}
	if !reflect.DeepEqual(titles(substr), []string{"Science"}) {
		t.Errorf("substring: got %v", titles(substr))
	}
}
