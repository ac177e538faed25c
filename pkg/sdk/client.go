package tutordex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/tutordex/internal/db"
	dbRedis "github.com/kailas-cloud/tutordex/internal/db/redis"
	"github.com/kailas-cloud/tutordex/internal/domain"
	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	domtutor "github.com/kailas-cloud/tutordex/internal/domain/tutor"
	tutorrepo "github.com/kailas-cloud/tutordex/internal/repository/tutor"
	directoryuc "github.com/kailas-cloud/tutordex/internal/usecase/directory"
	exploreuc "github.com/kailas-cloud/tutordex/internal/usecase/explore"
	healthuc "github.com/kailas-cloud/tutordex/internal/usecase/health"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, replaced by mocks in tests.
type directoryUseCase interface {
	Search(ctx context.Context, c criteria.Criteria) ([]domtutor.Tutor, error)
	Get(ctx context.Context, id string) (domtutor.Tutor, error)
	FilterOptions() directoryuc.Options
}

type exploreUseCase interface {
	Search(term string) []subject.Subject
	Catalog() []subject.Subject
}

type seeder interface {
	Upsert(ctx context.Context, t *domtutor.Tutor) error
	UpsertMany(ctx context.Context, tutors []domtutor.Tutor) error
}

// Client is the tutordex SDK entry point.
type Client struct {
	store        db.Store
	directorySvc directoryUseCase
	exploreSvc   exploreUseCase
	seeder       seeder
	healthSvc    healthUseCase
	obs          *observer
}

// New creates a tutordex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("tutordex: database address required (use WithValkey or WithRedis)")
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("tutordex: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

// Both drivers speak RESP with the JSON module, so one rueidis store serves them.
func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Username: cfg.username,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("tutordex: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("tutordex: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	// Key prefix is process-wide.
	if cfg.keyPrefix != "" {
		domain.KeyPrefix = cfg.keyPrefix
	}

	repo := tutorrepo.New(store)
	directorySvc := directoryuc.New(repo).WithSubjectOptions(cfg.subjectOptions)

	var catalog []subject.Subject
	if len(cfg.catalog) > 0 {
		catalog = toDomainSubjects(cfg.catalog)
	}

	return &Client{
		store:        store,
		directorySvc: directorySvc,
		exploreSvc:   exploreuc.New(catalog),
		seeder:       repo,
		healthSvc:    healthuc.New(store),
		obs:          obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
