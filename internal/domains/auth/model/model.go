package model

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	EndpointLogin  = "/auth/login"
	EndpointLogout = "/auth/logout"
	EndpointMe     = "/auth/me"

	UserKey = "user"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is an authenticated backend session. Token is the bearer token
// the backend issued; it is never persisted by this service.
type Session struct {
	Token     string
	User      User
	ExpiresAt time.Time
}

// UserRaw accepts the user shapes the backend has returned over time: numeric
// or string ids, a single name or split first and last names, role or level.
type UserRaw struct {
	ID        json.RawMessage `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	FullName  string          `json:"fullName"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      string          `json:"role"`
	Level     string          `json:"level"`
}

func (r UserRaw) ToModel() User {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = strings.TrimSpace(r.FullName)
	}

	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
	}

	role := r.Role
	if role == "" {
		role = r.Level
	}

	return User{
		ID:    idString(r.ID),
		Email: strings.TrimSpace(r.Email),
		Name:  name,
		Role:  strings.ToLower(strings.TrimSpace(role)),
	}
}

// LoginRaw is the login payload, found either at the top level or under data.
type LoginRaw struct {
	Token            string   `json:"token"`
	AccessToken      string   `json:"accessToken"`
	AccessTokenSnake string   `json:"access_token"`
	User             *UserRaw `json:"user"`
}

// BearerToken returns the first token field the backend filled in.
func (r LoginRaw) BearerToken() string {
	for _, candidate := range []string{r.Token, r.AccessToken, r.AccessTokenSnake} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return candidate
		}
	}

	return ""
}

func idString(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return number.String()
	}

	return ""
}
