package tutordex

import (
	"context"
	"fmt"
	"time"
)

// Tutors fetches verified tutors, orders them by rating and applies q.
// The result is never nil. When the store fails the error wraps ErrSourceUnavailable.
func (c *Client) Tutors(ctx context.Context, q Query) (_ []Tutor, err error) {
	start := time.Now()
	defer func() { c.obs.observe("tutors", start, err) }()

	cr, err := q.criteria()
	if err != nil {
		return []Tutor{}, err
	}
	tutors, err := c.directorySvc.Search(ctx, cr)
	if err != nil {
		return fromDomainTutors(tutors), fmt.Errorf("search tutors: %w", err)
	}
	return fromDomainTutors(tutors), nil
}

// Tutor returns a verified tutor by ID.
func (c *Client) Tutor(ctx context.Context, id string) (_ Tutor, err error) {
	start := time.Now()
	defer func() { c.obs.observe("tutor", start, err) }()

	t, err := c.directorySvc.Get(ctx, id)
	if err != nil {
		return Tutor{}, fmt.Errorf("get tutor: %w", err)
	}
	return fromDomainTutor(t), nil
}

// FilterOptions returns the selectable subjects and rating thresholds.
func (c *Client) FilterOptions() FilterOptions {
	o := c.directorySvc.FilterOptions()
	return FilterOptions{Subjects: o.Subjects, Ratings: o.Ratings}
}

// Put writes a single tutor record, replacing any previous version.
func (c *Client) Put(ctx context.Context, t Tutor) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("put", start, err) }()

	if t.ID == "" {
		return fmt.Errorf("tutordex: tutor has no id")
	}
	dt := toDomainTutor(t)
	if err = c.seeder.Upsert(ctx, &dt); err != nil {
		return fmt.Errorf("put tutor: %w", err)
	}
	return nil
}

// Seed writes tutors to the store, overwriting records with the same ID.
func (c *Client) Seed(ctx context.Context, tutors []Tutor) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("seed", start, err) }()

	for i, t := range tutors {
		if t.ID == "" {
			return fmt.Errorf("tutordex: tutor %d has no id", i)
		}
	}
	if err = c.seeder.UpsertMany(ctx, toDomainTutors(tutors)); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
