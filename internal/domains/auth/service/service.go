package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"glamp/config"
	"glamp/infras/backend"
	"glamp/infras/jwt"
	"glamp/infras/otel"
	"glamp/internal/domains/auth/model/dto"
	"glamp/internal/domains/auth/repository"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/logger"
	"glamp/shared/timezone"
	"glamp/shared/validator"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgLoginRequired      = "Please log in to continue"
	msgSessionExpired     = "Your session has expired. Please log in again"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (dto.MeResponse, error)
}

type serviceImpl struct {
	repo repository.Auth
	cfg  *config.Config
	otel otel.Otel
	jwt  jwt.JWT
}

func New(repo repository.Auth, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		jwt:  jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	session, err := s.repo.Login(ctx, req.Email, req.Password)
	if err != nil {
		if backend.IsStatus(err, http.StatusUnauthorized) || backend.IsStatus(err, http.StatusBadRequest) {
			return res, failure.Unauthorized(msgInvalidCredentials)
		}

		logger.WithContext(ctx).Error().Err(err).Msg("login failed")

		return res, failure.FromBackend(err, "")
	}

	session.ExpiresAt = timezone.Now().Add(time.Duration(s.cfg.Session.TTLSeconds) * time.Second)

	claims, err := s.jwt.Inspect(session.Token)
	if err != nil {
		log.Debug().Err(err).Msg("login token could not be inspected, using session ttl")
	} else {
		if claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Time
		}

		if session.User.ID == "" {
			session.User.ID = claims.SubjectID()
		}

		if session.User.Email == "" {
			session.User.Email = claims.Email
		}

		if session.User.Role == "" {
			session.User.Role = claims.Role
		}
	}

	res.FromSession(session)

	return res, nil
}

// Logout tells the backend the token is done with. The caller clears its
// cookie whatever the backend says, so failures are only logged.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Logout")
	defer scope.End()

	if backend.TokenFromContext(ctx) == "" {
		return nil
	}

	if err := s.repo.Logout(ctx); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Msg("backend logout failed")
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	if backend.TokenFromContext(ctx) == "" {
		return res, failure.Unauthorized(msgLoginRequired)
	}

	user, err := s.repo.Me(ctx)
	if err != nil {
		if backend.IsStatus(err, http.StatusUnauthorized) {
			return res, failure.Unauthorized(msgSessionExpired)
		}

		if errors.Is(err, backend.ErrUnexpectedShape) {
			logger.WithContext(ctx).Error().Err(err).Msg("unexpected current user payload")
		}

		return res, failure.FromBackend(err, "")
	}

	res.User = user

	return res, nil
}
