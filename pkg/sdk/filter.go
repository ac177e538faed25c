package tutordex

import (
	"github.com/kailas-cloud/tutordex/internal/domain/search/filter"
)

// FilterTutors applies q to tutors the way the directory does, after ordering them by rating.
// The input is not modified.
func FilterTutors(tutors []Tutor, q Query) ([]Tutor, error) {
	c, err := q.criteria()
	if err != nil {
		return nil, err
	}
	sorted := filter.SortByRating(toDomainTutors(tutors))
	return fromDomainTutors(filter.Directory(sorted, c)), nil
}

// FilterSubjects returns the catalog entries whose title or a description word starts with term.
func FilterSubjects(catalog []Subject, term string) []Subject {
	return fromDomainSubjects(filter.Explore(toDomainSubjects(catalog), term))
}
