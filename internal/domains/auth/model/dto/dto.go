package dto

import (
	"glamp/internal/domains/auth/model"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse echoes the token for bearer clients; browsers use the
// auth_token cookie set alongside it.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      model.User `json:"user"`
}

func (r *LoginResponse) FromSession(session model.Session) {
	r.Token = session.Token
	r.ExpiresAt = session.ExpiresAt
	r.User = session.User
}

type MeResponse struct {
	User model.User `json:"user"`
}
