package middleware_test

import (
	"glamp/config"
	"glamp/infras/backend"
	"glamp/infras/jwt"
	jwtMocks "glamp/infras/jwt/mocks"
	"glamp/infras/otel/mocks"
	"glamp/permissions"
	"glamp/shared/constant"
	"glamp/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type seen struct {
	token  string
	role   string
	userID string
}

func newAuthRouter(t *testing.T) (http.Handler, *jwtMocks.MockJWT, *seen) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	jwtService := jwtMocks.NewMockJWT(ctrl)
	auth := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get(), &config.Config{})

	got := &seen{}
	record := func(w http.ResponseWriter, r *http.Request) {
		got.token = backend.TokenFromContext(r.Context())
		got.role, _ = r.Context().Value(constant.ContextKeyUserRole).(string)
		got.userID, _ = r.Context().Value(constant.ContextKeyUserID).(string)

		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Use(auth.Auth, auth.RBAC)
	router.Route("/v1", func(r chi.Router) {
		r.Get("/glamps", record)
		r.Get("/auth/me", record)
		r.Get("/finance/{kind}", record)
		r.HandleFunc("/admin/*", record)
		r.HandleFunc("/super-admin/*", record)
	})

	return router, jwtService, got
}

func request(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	return req
}

func TestAuth_PublicRouteWithoutToken(t *testing.T) {
	router, _, got := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/glamps", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.token)
}

func TestAuth_PublicRouteIgnoresBadToken(t *testing.T) {
	router, jwtService, got := newAuthRouter(t)

	jwtService.EXPECT().Inspect("broken").Return(nil, jwt.ErrInvalidToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/glamps", "broken"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "broken", got.token)
}

func TestAuth_ProtectedRoute(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		token    string
		claims   *jwt.Claims
		err      error
		expected int
	}{
		{name: "missing token", target: "/v1/auth/me", expected: http.StatusUnauthorized},
		{name: "expired token", target: "/v1/auth/me", token: "old", err: jwt.ErrExpiredToken, expected: http.StatusUnauthorized},
		{name: "any role may read itself", target: "/v1/auth/me", token: "t", claims: &jwt.Claims{UserID: "7", Role: "staff"}, expected: http.StatusOK},
		{name: "finance role reads ledgers", target: "/v1/finance/expenses", token: "t", claims: &jwt.Claims{UserID: "7", Role: "FINANCE"}, expected: http.StatusOK},
		{name: "staff cannot read ledgers", target: "/v1/finance/expenses", token: "t", claims: &jwt.Claims{UserID: "7", Role: "staff"}, expected: http.StatusForbidden},
		{name: "admin reaches admin area", target: "/v1/admin/users", token: "t", claims: &jwt.Claims{UserID: "1", Role: "admin"}, expected: http.StatusOK},
		{name: "admin cannot reach super admin area", target: "/v1/super-admin/users", token: "t", claims: &jwt.Claims{UserID: "1", Role: "admin"}, expected: http.StatusForbidden},
		{name: "super admin reaches both", target: "/v1/super-admin/users", token: "t", claims: &jwt.Claims{UserID: "1", Role: "superadmin"}, expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, jwtService, got := newAuthRouter(t)

			if tt.token != "" {
				jwtService.EXPECT().Inspect(tt.token).Return(tt.claims, tt.err)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request(http.MethodGet, tt.target, tt.token))

			assert.Equal(t, tt.expected, rec.Code)

			if tt.expected == http.StatusOK {
				assert.Equal(t, tt.token, got.token)
				assert.Equal(t, tt.claims.UserID, got.userID)
			}
		})
	}
}

func TestAuth_TokenFromCookie(t *testing.T) {
	router, jwtService, got := newAuthRouter(t)

	jwtService.EXPECT().Inspect("cookie-token").Return(&jwt.Claims{UserID: "3", Role: "Admin"}, nil)

	req := request(http.MethodGet, "/v1/finance/income", "")
	req.AddCookie(&http.Cookie{Name: constant.CookieAuthToken, Value: "cookie-token"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cookie-token", got.token)
	assert.Equal(t, "admin", got.role)
}

func TestAuth_UnknownRouteFallsThrough(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/nowhere", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
