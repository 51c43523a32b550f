package dto_test

import (
	"glamp/internal/domains/auth/model"
	"glamp/internal/domains/auth/model/dto"
	"glamp/shared/validator"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginResponse_FromSession(t *testing.T) {
	expires := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var res dto.LoginResponse
	res.FromSession(model.Session{
		Token:     "token-1",
		ExpiresAt: expires,
		User:      model.User{ID: "u-1", Email: "owner@example.com", Role: "admin"},
	})

	assert.Equal(t, "token-1", res.Token)
	assert.Equal(t, expires, res.ExpiresAt)
	assert.Equal(t, "u-1", res.User.ID)
}

func TestLoginRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"email":"owner@example.com","password":"secret"}`},
		{name: "missing password", body: `{"email":"owner@example.com"}`, wantErr: true},
		{name: "bad email", body: `{"email":"owner","password":"secret"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.LoginRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
