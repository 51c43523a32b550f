package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"glamp/infras/backend"
	"glamp/infras/otel"
	"glamp/internal/domains/auth/model"
	"glamp/shared/constant"
)

var ErrMissingToken = errors.New("login response carried no token")

type Auth interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (model.User, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Auth {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *repositoryImpl) Login(ctx context.Context, email, password string) (res model.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Post(ctx, model.EndpointLogin, loginRequest{Email: email, Password: password})
	if err != nil {
		return res, fmt.Errorf("failed to login: %w", err)
	}

	login, err := backend.UnwrapObject[model.LoginRaw](raw)
	if err != nil {
		return res, fmt.Errorf("failed to read login response: %w", err)
	}

	res.Token = login.BearerToken()
	if res.Token == "" {
		return res, ErrMissingToken
	}

	if login.User != nil {
		res.User = login.User.ToModel()
	}

	return res, nil
}

func (r *repositoryImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Auth.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = r.client.Post(ctx, model.EndpointLogout, nil); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Me(ctx context.Context) (res model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Auth.Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := r.client.Get(ctx, model.EndpointMe, nil)
	if err != nil {
		return res, fmt.Errorf("failed to fetch current user: %w", err)
	}

	user, err := backend.UnwrapObject[model.UserRaw](raw, model.UserKey)
	if err != nil {
		return res, fmt.Errorf("failed to read current user: %w", err)
	}

	return user.ToModel(), nil
}
