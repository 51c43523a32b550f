package repository

//go:generate go run go.uber.org/mock/mockgen -source=./wizard.go -destination=../mocks/wizard_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"glamp/config"
	"glamp/internal/domains/booking/model"
	"glamp/shared"
	"glamp/shared/cache"
	"glamp/shared/timezone"

	"github.com/google/uuid"
)

const (
	cacheWizard     = "booking:wizard"
	cacheSubmitLock = "booking:submit"

	defaultBackendTimeoutSeconds = 30
	lockMarginSeconds            = 10
)

// ErrLockLost is returned by Unlock when the lock expired and may now belong
// to another submission.
var ErrLockLost = errors.New("booking submit lock expired before release")

// Wizard persists funnel state per browser session.
type Wizard interface {
	// Get returns a fresh wizard when none is stored.
	Get(ctx context.Context, sessionID string) (model.Wizard, error)
	Save(ctx context.Context, sessionID string, wizard model.Wizard) error
	Delete(ctx context.Context, sessionID string) error
	// Lock takes the submit lock; ok is false when a submission is already running.
	// The returned token must be handed back to Unlock.
	Lock(ctx context.Context, sessionID string) (token string, ok bool, err error)
	// Unlock releases the lock only while it is still held with token.
	Unlock(ctx context.Context, sessionID, token string) error
}

type wizardStore struct {
	cache cache.RedisCache
	cfg   *config.Config
}

func NewWizard(cache cache.RedisCache, cfg *config.Config) Wizard {
	return &wizardStore{
		cache: cache,
		cfg:   cfg,
	}
}

func (s *wizardStore) Get(ctx context.Context, sessionID string) (model.Wizard, error) {
	var wizard model.Wizard

	err := s.cache.Get(ctx, shared.BuildCacheKey(cacheWizard, sessionID), &wizard)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return model.NewWizard(), nil
		}

		return model.Wizard{}, fmt.Errorf("failed to load booking progress: %w", err)
	}

	if wizard.Step < model.StepAvailability || wizard.Step > model.StepPayment {
		wizard.Step = model.StepAvailability
	}

	return wizard, nil
}

func (s *wizardStore) Save(ctx context.Context, sessionID string, wizard model.Wizard) error {
	wizard.UpdatedAt = timezone.Now()

	return s.cache.Save(ctx, shared.BuildCacheKey(cacheWizard, sessionID), wizard, s.cfg.Session.TTLSeconds)
}

func (s *wizardStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, shared.BuildCacheKey(cacheWizard, sessionID))
}

func (s *wizardStore) Lock(ctx context.Context, sessionID string) (string, bool, error) {
	token := uuid.NewString()

	ok, err := s.cache.SaveNX(ctx, shared.BuildCacheKey(cacheSubmitLock, sessionID), token, s.lockSeconds())
	if err != nil || !ok {
		return "", false, err
	}

	return token, true, nil
}

func (s *wizardStore) Unlock(ctx context.Context, sessionID, token string) error {
	deleted, err := s.cache.DeleteIfEqual(ctx, shared.BuildCacheKey(cacheSubmitLock, sessionID), token)
	if err != nil {
		return err
	}

	if !deleted {
		return ErrLockLost
	}

	return nil
}

// lockSeconds outlives a confirm that waits on two backend calls and the
// payment delay, whatever the configured value.
func (s *wizardStore) lockSeconds() int {
	backendTimeout := s.cfg.Backend.TimeoutSeconds
	if backendTimeout <= 0 {
		backendTimeout = defaultBackendTimeoutSeconds
	}

	paymentSeconds := (s.cfg.Booking.PaymentProcessingMillis + 999) / 1000
	floor := 2*backendTimeout + paymentSeconds + lockMarginSeconds

	return max(s.cfg.Booking.SubmitLockSeconds, floor)
}
