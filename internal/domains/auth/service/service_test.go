package service_test

import (
	"context"
	"errors"
	"glamp/config"
	"glamp/infras/backend"
	"glamp/infras/jwt"
	jwtMocks "glamp/infras/jwt/mocks"
	"glamp/infras/otel/mocks"
	authMocks "glamp/internal/domains/auth/mocks"
	"glamp/internal/domains/auth/model"
	"glamp/internal/domains/auth/model/dto"
	"glamp/internal/domains/auth/service"
	"glamp/shared/failure"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc  service.Auth
	repo *authMocks.MockAuth
	jwt  *jwtMocks.MockJWT
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Session.TTLSeconds = 3600

	f := fixture{
		repo: authMocks.NewMockAuth(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.repo, cfg, mocks.NewOtel(), f.jwt)

	return f
}

func TestAuthService_Login(t *testing.T) {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantCode  int
		check     func(t *testing.T, res dto.LoginResponse)
	}{
		{
			name: "successful login takes expiry and role from token",
			req:  dto.LoginRequest{Email: "owner@example.com", Password: "secret"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Login(gomock.Any(), "owner@example.com", "secret").
					Return(model.Session{Token: "token-1", User: model.User{Email: "owner@example.com"}}, nil)

				f.jwt.EXPECT().Inspect("token-1").Return(&jwt.Claims{
					UserID:           "u-1",
					Role:             "finance",
					RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(expires)},
				}, nil)
			},
			check: func(t *testing.T, res dto.LoginResponse) {
				assert.Equal(t, "token-1", res.Token)
				assert.Equal(t, "u-1", res.User.ID)
				assert.Equal(t, "finance", res.User.Role)
				assert.True(t, expires.Equal(res.ExpiresAt))
			},
		},
		{
			name: "opaque token falls back to session ttl",
			req:  dto.LoginRequest{Email: "owner@example.com", Password: "secret"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Session{Token: "opaque", User: model.User{ID: "u-2", Role: "admin"}}, nil)

				f.jwt.EXPECT().Inspect("opaque").Return(nil, jwt.ErrInvalidToken)
			},
			check: func(t *testing.T, res dto.LoginResponse) {
				assert.Equal(t, "admin", res.User.Role)
				assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
			},
		},
		{
			name:      "invalid request",
			req:       dto.LoginRequest{Email: "owner"},
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "wrong credentials",
			req:  dto.LoginRequest{Email: "owner@example.com", Password: "nope"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Session{}, &backend.Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"})
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "backend unreachable",
			req:  dto.LoginRequest{Email: "owner@example.com", Password: "secret"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Session{}, &backend.Error{Message: "unable to connect"})
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)

	// No token, nothing to tell the backend.
	require.NoError(t, f.svc.Logout(context.Background()))

	f.repo.EXPECT().Logout(gomock.Any()).Return(errors.New("404"))

	assert.NoError(t, f.svc.Logout(backend.WithToken(context.Background(), "token-1")))
}

func TestAuthService_Me(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Me(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	ctx := backend.WithToken(context.Background(), "token-1")

	f.repo.EXPECT().Me(gomock.Any()).Return(model.User{ID: "u-1", Role: "admin"}, nil)

	res, err := f.svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.User.ID)

	f.repo.EXPECT().Me(gomock.Any()).Return(model.User{}, &backend.Error{Status: http.StatusUnauthorized, Message: "jwt expired"})

	_, err = f.svc.Me(ctx)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	f.repo.EXPECT().Me(gomock.Any()).Return(model.User{}, &backend.Error{Status: http.StatusForbidden, Message: "no"})

	_, err = f.svc.Me(ctx)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}
