package auth_test

import (
	"glamp/config"
	"glamp/infras/otel/mocks"
	"glamp/internal/domains/auth/model"
	"glamp/internal/domains/auth/model/dto"
	authMocks "glamp/internal/domains/auth/service/mocks"
	"glamp/internal/handlers/auth"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/shared/timezone"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (chi.Router, *authMocks.MockAuth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Session.TTLSeconds = 3600
	cfg.Session.Secure = true

	svc := authMocks.NewMockAuth(ctrl)
	handler := auth.New(svc, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func authCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == constant.CookieAuthToken {
			return c
		}
	}

	t.Fatalf("cookie %s not set", constant.CookieAuthToken)

	return nil
}

func TestHandler_Login(t *testing.T) {
	t.Run("sets the auth cookie", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Email: "owner@glamp.pk", Password: "secret"}).
			Return(dto.LoginResponse{
				Token:     "token-1",
				ExpiresAt: timezone.Now().Add(30 * time.Minute),
				User:      model.User{ID: "1", Email: "owner@glamp.pk", Role: "admin"},
			}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"owner@glamp.pk","password":"secret"}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		cookie := authCookie(t, rec)
		assert.Equal(t, "token-1", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.InDelta(t, 1800, cookie.MaxAge, 5)
	})

	t.Run("expired token falls back to the session ttl", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.LoginResponse{Token: "token-2", ExpiresAt: timezone.Now().Add(-time.Minute)}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"owner@glamp.pk","password":"secret"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3600, authCookie(t, rec).MaxAge)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.LoginResponse{}, failure.Unauthorized("Invalid email or password"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"owner@glamp.pk","password":"nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestHandler_Logout(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Logout(gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := authCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestHandler_Me(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Me(gomock.Any()).Return(dto.MeResponse{}, failure.Unauthorized("Please log in to continue"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
