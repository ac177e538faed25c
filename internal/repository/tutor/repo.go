package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tutordex/internal/db"
	"github.com/kailas-cloud/tutordex/internal/domain"
	domtutor "github.com/kailas-cloud/tutordex/internal/domain/tutor"
	logpkg "github.com/kailas-cloud/tutordex/internal/logger"
)

// store is the consumer interface for user documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) error
}

// Repo reads and writes user records and implements usecase/directory.Repository.
type Repo struct {
	store store
}

// New creates a tutor repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// ListVerified returns every user flagged as a verified tutor, in no particular order.
// Documents that cannot be read or decoded are skipped and logged.
func (r *Repo) ListVerified(ctx context.Context) ([]domtutor.Tutor, error) {
	keys, err := r.store.Scan(ctx, userKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	if len(keys) == 0 {
		return []domtutor.Tutor{}, nil
	}

	logger := logpkg.FromContext(ctx)
	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	var keyErrs *db.KeyErrors
	switch {
	case errors.As(err, &keyErrs):
		for _, key := range keyErrs.Keys() {
			logger.Warn("skipping unreadable user key", zap.String("key", key), zap.Error(keyErrs.Errs[key]))
		}
	case err != nil:
		return nil, fmt.Errorf("get users: %w", err)
	}

	tutors := make([]domtutor.Tutor, 0, len(keys))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		id := extractUserID(keys[i])
		t, err := parseJSONGetResult(id, raw)
		if err != nil {
			logger.Warn("skipping malformed user document", zap.String("key", keys[i]), zap.Error(err))
			continue
		}
		if !t.Verified() {
			continue
		}
		tutors = append(tutors, t)
	}
	return tutors, nil
}

// Get returns a user record by ID, verified or not.
func (r *Repo) Get(ctx context.Context, id string) (domtutor.Tutor, error) {
	key := userKey(id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domtutor.Tutor{}, domain.ErrTutorNotFound
		}
		return domtutor.Tutor{}, fmt.Errorf("json.get %s: %w", key, err)
	}
	return parseJSONGetResult(id, raw)
}

// Upsert stores a user record, replacing any previous version.
func (r *Repo) Upsert(ctx context.Context, t *domtutor.Tutor) error {
	data, err := buildUserDoc(t)
	if err != nil {
		return err
	}
	key := userKey(t.ID())
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// UpsertMany stores user records in one pipelined round-trip.
func (r *Repo) UpsertMany(ctx context.Context, tutors []domtutor.Tutor) error {
	items := make([]db.JSONSetItem, 0, len(tutors))
	for i := range tutors {
		data, err := buildUserDoc(&tutors[i])
		if err != nil {
			return err
		}
		items = append(items, db.JSONSetItem{Key: userKey(tutors[i].ID()), Path: "$", Data: data})
	}
	if err := r.store.JSONSetMulti(ctx, items); err != nil {
		return fmt.Errorf("json.set users: %w", err)
	}
	return nil
}

// DeleteAll removes every user record and returns how many keys were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, userKey("*"))
	if err != nil {
		return 0, fmt.Errorf("scan users: %w", err)
	}
	for i, key := range keys {
		if err := r.store.Del(ctx, key); err != nil {
			return i, fmt.Errorf("del %s: %w", key, err)
		}
	}
	return len(keys), nil
}

func userKey(id string) string {
	return fmt.Sprintf("%susers:%s", domain.KeyPrefix, id)
}

func extractUserID(key string) string {
	return strings.TrimPrefix(key, domain.KeyPrefix+"users:")
}
