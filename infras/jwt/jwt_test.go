package jwt_test

import (
	"glamp/config"
	glampJwt "glamp/infras/jwt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func claimsExpiringIn(d time.Duration) glampJwt.Claims {
	return glampJwt.Claims{
		UserID: "u-1",
		Email:  "finance@example.com",
		Role:   "finance",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(d)),
		},
	}
}

func TestInspect_Unverified(t *testing.T) {
	svc := glampJwt.New(&config.Config{})

	claims, err := svc.Inspect(sign(t, "backend-only-secret", claimsExpiringIn(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.SubjectID())
	assert.Equal(t, "finance", claims.Role)

	_, err = svc.Inspect(sign(t, "backend-only-secret", claimsExpiringIn(-time.Minute)))
	assert.ErrorIs(t, err, glampJwt.ErrExpiredToken)

	_, err = svc.Inspect("not-a-token")
	assert.ErrorIs(t, err, glampJwt.ErrInvalidToken)

	_, err = svc.Inspect("")
	assert.ErrorIs(t, err, glampJwt.ErrMissingToken)
}

func TestInspect_Verified(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "shared-secret"

	svc := glampJwt.New(cfg)

	_, err := svc.Inspect(sign(t, "shared-secret", claimsExpiringIn(time.Hour)))
	assert.NoError(t, err)

	_, err = svc.Inspect(sign(t, "other-secret", claimsExpiringIn(time.Hour)))
	assert.ErrorIs(t, err, glampJwt.ErrInvalidToken)

	_, err = svc.Inspect(sign(t, "shared-secret", claimsExpiringIn(-time.Minute)))
	assert.ErrorIs(t, err, glampJwt.ErrExpiredToken)
}

func TestSubjectIDFallsBackToSub(t *testing.T) {
	claims := glampJwt.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-7"}}

	assert.Equal(t, "sub-7", claims.SubjectID())
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := glampJwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = glampJwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = glampJwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, glampJwt.ErrMissingToken)
}
