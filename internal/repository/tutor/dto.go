package tutor

import (
	"bytes"
	"encoding/json"
	"fmt"

	domtutor "github.com/kailas-cloud/tutordex/internal/domain/tutor"
)

// userDoc is the stored user record. subjects and rating are decoded leniently:
// a non-array subjects value or a non-numeric rating is treated as absent.
type userDoc struct {
	FirstName     string          `json:"firstname,omitempty"`
	LastName      string          `json:"lastname,omitempty"`
	Email         string          `json:"email,omitempty"`
	Subjects      json.RawMessage `json:"subjects,omitempty"`
	Rating        json.RawMessage `json:"rating,omitempty"`
	TutorVerified bool            `json:"tutorVerified"`
}

type subjectDoc struct {
	Name string `json:"name"`
}

// buildUserDoc converts a domain Tutor into its stored form.
func buildUserDoc(t *domtutor.Tutor) ([]byte, error) {
	doc := struct {
		FirstName     string       `json:"firstname,omitempty"`
		LastName      string       `json:"lastname,omitempty"`
		Email         string       `json:"email,omitempty"`
		Subjects      []subjectDoc `json:"subjects,omitempty"`
		Rating        *float64     `json:"rating,omitempty"`
		TutorVerified bool         `json:"tutorVerified"`
	}{
		FirstName:     t.FirstName(),
		LastName:      t.LastName(),
		Email:         t.Email(),
		TutorVerified: t.Verified(),
	}
	for _, name := range t.SubjectNames() {
		doc.Subjects = append(doc.Subjects, subjectDoc{Name: name})
	}
	if r, ok := t.Rating(); ok {
		doc.Rating = &r
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal tutor %s: %w", t.ID(), err)
	}
	return data, nil
}

// parseJSONGetResult decodes a JSON.GET "$" reply (a one-element array) into a Tutor.
func parseJSONGetResult(id string, raw []byte) (domtutor.Tutor, error) {
	var docs []userDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domtutor.Tutor{}, fmt.Errorf("unmarshal user %s: %w", id, err)
	}
	if len(docs) == 0 {
		return domtutor.Tutor{}, fmt.Errorf("empty JSON.GET result for user %s", id)
	}
	return docToTutor(id, &docs[0]), nil
}

func docToTutor(id string, d *userDoc) domtutor.Tutor {
	return domtutor.Reconstruct(
		id, d.FirstName, d.LastName, d.Email,
		parseSubjects(d.Subjects), parseRating(d.Rating), d.TutorVerified,
	)
}

func parseSubjects(raw json.RawMessage) []domtutor.Subject {
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]domtutor.Subject, 0, len(items))
	for _, item := range items {
		var s subjectDoc
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		out = append(out, domtutor.NewSubject(s.Name))
	}
	return out
}

func parseRating(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var r float64
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil
	}
	return &r
}

// seedDoc is a user record as it appears in seed files, carrying its own ID.
type seedDoc struct {
	ID string `json:"id"`
	userDoc
}

// DecodeSeed parses a JSON array of user records. Every record needs a non-empty, unique id.
func DecodeSeed(data []byte) ([]domtutor.Tutor, error) {
	var docs []seedDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("unmarshal seed: %w", err)
	}
	tutors := make([]domtutor.Tutor, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for i := range docs {
		id := docs[i].ID
		if id == "" {
			return nil, fmt.Errorf("seed record %d: id is required", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("seed record %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}
		tutors = append(tutors, docToTutor(id, &docs[i].userDoc))
	}
	return tutors, nil
}
