package chi

import (
	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
	directoryuc "github.com/kailas-cloud/tutordex/internal/usecase/directory"
)

// featuredSubjectCount is how many subjects a tutor card shows.
const featuredSubjectCount = 3

// SubjectItem is an explore catalog entry.
type SubjectItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TutorsPath  string `json:"tutors_path"`
}

// SubjectListResponse is the body of GET /subjects.
type SubjectListResponse struct {
	Query string        `json:"query"`
	Items []SubjectItem `json:"items"`
	Total int           `json:"total"`
}

// TutorItem is a directory tutor card.
type TutorItem struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	Subjects         []string `json:"subjects"`
	FeaturedSubjects []string `json:"featured_subjects"`
	SubjectsLabel    string   `json:"subjects_label"`
	Rating           *float64 `json:"rating"`
	RatingLabel      string   `json:"rating_label"`
	Stars            int      `json:"stars"`
}

// TutorListResponse is the body of GET /tutors.
type TutorListResponse struct {
	Items []TutorItem `json:"items"`
	Total int         `json:"total"`
}

// FilterOptionsResponse is the body of GET /tutors/filters.
type FilterOptionsResponse struct {
	Subjects []string `json:"subjects"`
	Ratings  []int    `json:"ratings"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func subjectToItem(s subject.Subject) SubjectItem {
	return SubjectItem{
		Icon:        s.Icon(),
		Title:       s.Title(),
		Description: s.Description(),
		TutorsPath:  s.TutorsPath(),
	}
}

func subjectsToItems(subs []subject.Subject) []SubjectItem {
	items := make([]SubjectItem, len(subs))
	for i, s := range subs {
		items[i] = subjectToItem(s)
	}
	return items
}

func tutorToItem(t tutor.Tutor) TutorItem {
	item := TutorItem{
		ID:               t.ID(),
		FirstName:        t.FirstName(),
		LastName:         t.LastName(),
		FullName:         t.FullName(),
		Email:            t.Email(),
		Subjects:         t.SubjectNames(),
		FeaturedSubjects: subjectNames(t.FeaturedSubjects(featuredSubjectCount)),
		SubjectsLabel:    t.SubjectsLabel(),
		RatingLabel:      t.RatingLabel(),
		Stars:            t.Stars(),
	}
	if r, ok := t.Rating(); ok {
		item.Rating = &r
	}
	return item
}

func tutorsToItems(tutors []tutor.Tutor) []TutorItem {
	items := make([]TutorItem, len(tutors))
	for i, t := range tutors {
		items[i] = tutorToItem(t)
	}
	return items
}

func subjectNames(subs []tutor.Subject) []string {
	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = s.Name()
	}
	return names
}

func filterOptionsToResponse(o directoryuc.Options) FilterOptionsResponse {
	return FilterOptionsResponse{Subjects: o.Subjects, Ratings: o.Ratings}
}
