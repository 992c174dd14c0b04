package response

import (
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func FromClaims(c entities.AuthClaims) UserResponse {
	return UserResponse{ID: c.UserID, Name: c.Name, Email: c.Email}
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromSession(s usecase.Session) TokenResponse {
	return TokenResponse{AccessToken: s.AccessToken, TokenType: "Bearer", ExpiresAt: s.Claims.ExpiresAt}
}
