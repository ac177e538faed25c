package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	"github.com/kailas-cloud/tutordex/internal/domain/tutor"
)

func renderTutors(w io.Writer, tutors []tutor.Tutor) error {
	if len(tutors) == 0 {
		_, err := fmt.Fprintln(w, "No tutors found matching your criteria.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Subjects", "Rating", "Stars")
	for _, t := range tutors {
		if err := table.Append([]string{
			t.ID(),
			t.FullName(),
			t.SubjectsLabel(),
			t.RatingLabel(),
			stars(t.Stars()),
		}); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func renderSubjects(w io.Writer, subjects []subject.Subject) error {
	if len(subjects) == 0 {
		_, err := fmt.Fprintln(w, "No subjects found.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Icon", "Title", "Description", "Tutors")
	for _, s := range subjects {
		if err := table.Append([]string{s.Icon(), s.Title(), s.Description(), s.TutorsPath()}); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// stars renders filled and empty stars, e.g. "★★★☆☆ (3)".
func stars(filled int) string {
	return strings.Repeat("★", filled) + strings.Repeat("☆", tutor.StarCount-filled) +
		" (" + strconv.Itoa(filled) + ")"
}
