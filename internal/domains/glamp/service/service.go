package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"glamp/config"
	"glamp/infras/otel"
	"glamp/internal/domains/glamp/model"
	"glamp/internal/domains/glamp/repository"
	"glamp/shared"
	"glamp/shared/cache"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGlamp    = "glamp:get"
	cacheGetAllGlamp = "glamp:gets"
)

type Glamp interface {
	GetAll(ctx context.Context) ([]model.Glamp, error)
	Get(ctx context.Context, id string) (model.Glamp, error)
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Glamp
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Glamp, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Glamp {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Glamp, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Glamp.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllGlamp, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheGetAllGlamp).Msg("cache hit for glamps")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get glamps")

		return nil, failure.FromBackend(err, "")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllGlamp, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save glamps to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Glamp, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Glamp.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !validator.IsHyphenatedUUID(id) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid glamp id %q", id))
	}

	cacheKey := shared.BuildCacheKey(cacheGetGlamp, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for glamp")

		return res, nil
	}

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get glamp")

		return res, failure.FromBackend(err, "")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save glamp to cache")
		}
	}()

	return res, nil
}

// Invalidate drops every cached glamp so admin edits show up immediately.
func (s *serviceImpl) Invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGlamp)
	shared.InvalidateCaches(ctx, s.cache, cacheGetGlamp)
}
