package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"glamp/config"
	"glamp/internal/domains/confirmation/model"
	"glamp/shared"
	"glamp/shared/cache"
)

const cacheSnapshot = "booking:confirmation"

// ErrNoSnapshot is returned when the session holds no confirmation.
var ErrNoSnapshot = errors.New("no booking confirmation in session")

// Snapshot keeps the confirmation handoff in session-scoped storage.
type Snapshot interface {
	Save(ctx context.Context, sessionID string, snapshot model.Snapshot) error
	Peek(ctx context.Context, sessionID string) (model.Snapshot, error)
	// Take returns the snapshot and removes it.
	Take(ctx context.Context, sessionID string) (model.Snapshot, error)
}

type snapshotStore struct {
	cache cache.RedisCache
	cfg   *config.Config
}

func New(cache cache.RedisCache, cfg *config.Config) Snapshot {
	return &snapshotStore{
		cache: cache,
		cfg:   cfg,
	}
}

func (s *snapshotStore) Save(ctx context.Context, sessionID string, snapshot model.Snapshot) error {
	return s.cache.Save(ctx, shared.BuildCacheKey(cacheSnapshot, sessionID), snapshot, s.cfg.Session.TTLSeconds)
}

func (s *snapshotStore) Peek(ctx context.Context, sessionID string) (res model.Snapshot, err error) {
	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheSnapshot, sessionID), &res)

	return res, translate(err)
}

func (s *snapshotStore) Take(ctx context.Context, sessionID string) (res model.Snapshot, err error) {
	err = s.cache.Take(ctx, shared.BuildCacheKey(cacheSnapshot, sessionID), &res)

	return res, translate(err)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cache.Nil):
		return ErrNoSnapshot
	default:
		return fmt.Errorf("failed to read booking confirmation: %w", err)
	}
}
