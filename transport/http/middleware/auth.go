package middleware

import (
	"context"
	"errors"
	"glamp/config"
	"glamp/infras/backend"
	"glamp/infras/jwt"
	"glamp/infras/otel"
	"glamp/permissions"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"glamp/transport/http/response"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return ""
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

// bearerToken reads the token from the Authorization header, falling back to
// the auth_token cookie set at login.
func bearerToken(request *http.Request) (string, error) {
	if header := request.Header.Get(constant.RequestHeaderAuthorization); header != "" {
		return jwt.ExtractTokenFromHeader(header)
	}

	if cookie, err := request.Cookie(constant.CookieAuthToken); err == nil && strings.TrimSpace(cookie.Value) != "" {
		return strings.TrimSpace(cookie.Value), nil
	}

	return "", jwt.ErrMissingToken
}

// Auth forwards the caller's token to the backend through the request
// context. Endpoints marked skip are served anonymously when no token is
// sent; every other endpoint needs a token that is well formed and unexpired.
// Unknown routes fall through so the router can answer 404.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		path := routePattern(request)
		method := request.Method

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		skip := path == "" || m.permission == nil || m.permission.Skip
		if !skip {
			skip = m.permission.FindPermissions(path, method).Skip
		}

		tokenString, err := bearerToken(request)
		if err != nil {
			if skip {
				scope.End()
				next.ServeHTTP(writer, request)

				return
			}

			if errors.Is(err, jwt.ErrMissingToken) {
				err = failure.Unauthorized("Missing authorization token")
			} else {
				err = failure.Unauthorized("Invalid authorization header format")
			}

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = backend.WithToken(ctx, tokenString)

		claims, err := m.jwtService.Inspect(tokenString)
		if err != nil {
			if skip {
				scope.End()
				next.ServeHTTP(writer, request.WithContext(ctx))

				return
			}

			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.SubjectID() == "" {
			log.Warn().Str("path", path).Msg("token carries no user id")
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.SubjectID())
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, strings.ToLower(claims.Role))

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks if user has required role
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		path := routePattern(request)

		if m.permission.Skip || path == "" {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(path, request.Method)

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if len(permission.Permissions) > 0 {
			if !slices.Contains(permission.Permissions, userRole) {
				err := failure.ForbiddenError
				scope.TraceError(err)
				scope.SetAttributes(map[string]any{
					"user_role":     userRole,
					"allowed_roles": permission.Permissions,
					"reason":        "role_not_allowed",
				})
				scope.End()
				response.WithError(writer, err)

				return
			}
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
