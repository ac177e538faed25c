package tutordex

import (
	"context"

	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	domtutor "github.com/kailas-cloud/tutordex/internal/domain/tutor"
	directoryuc "github.com/kailas-cloud/tutordex/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/tutordex/internal/usecase/health"
)

// --- directoryUseCase mock ---

type mockDirectoryUC struct {
	searchFn  func(ctx context.Context, c criteria.Criteria) ([]domtutor.Tutor, error)
	getFn     func(ctx context.Context, id string) (domtutor.Tutor, error)
	optionsFn func() directoryuc.Options
}

func (m *mockDirectoryUC) Search(ctx context.Context, c criteria.Criteria) ([]domtutor.Tutor, error) {
	return m.searchFn(ctx, c)
}

func (m *mockDirectoryUC) Get(ctx context.Context, id string) (domtutor.Tutor, error) {
	return m.getFn(ctx, id)
}

func (m *mockDirectoryUC) FilterOptions() directoryuc.Options {
	return m.optionsFn()
}

// --- exploreUseCase mock ---

type mockExploreUC struct {
	searchFn func(term string) []subject.Subject
	catalog  []subject.Subject
}

func (m *mockExploreUC) Search(term string) []subject.Subject {
	return m.searchFn(term)
}

func (m *mockExploreUC) Catalog() []subject.Subject {
	return m.catalog
}

// --- seeder mock ---

type mockSeeder struct {
	upsertFn     func(ctx context.Context, t *domtutor.Tutor) error
	upsertManyFn func(ctx context.Context, tutors []domtutor.Tutor) error
}

func (m *mockSeeder) Upsert(ctx context.Context, t *domtutor.Tutor) error {
	return m.upsertFn(ctx, t)
}

func (m *mockSeeder) UpsertMany(ctx context.Context, tutors []domtutor.Tutor) error {
	return m.upsertManyFn(ctx, tutors)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}

// --- helpers ---

func testClient(
	directorySvc directoryUseCase,
	exploreSvc exploreUseCase,
	s seeder,
) *Client {
	return &Client{
		directorySvc: directorySvc,
		exploreSvc:   exploreSvc,
		seeder:       s,
	}
}

func floatPtr(f float64) *float64 { return &f }

func domainTutor(id, first string, rating *float64, subjects ...string) domtutor.Tutor {
	subs := make([]domtutor.Subject, len(subjects))
	for i, s := range subjects {
		subs[i] = domtutor.NewSubject(s)
	}
	return domtutor.Reconstruct(id, first, "", "", subs, rating, true)
}
