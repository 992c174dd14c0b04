package security

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenTTL = 12 * time.Hour
	tokenIssuer     = "agenda-facil"
)

// ErrMissingSecret is returned when AUTH_JWT_SECRET is not configured.
var ErrMissingSecret = errors.New("AUTH_JWT_SECRET is not set")

type agendaClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// NewJWTIssuerFromEnv reads AUTH_JWT_SECRET and AUTH_TOKEN_TTL (a Go duration, default 12h).
func NewJWTIssuerFromEnv() (*JWTIssuer, error) {
	ttl := defaultTokenTTL
	if v := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_TOKEN_TTL %q: %w", v, err)
		}
		ttl = d
	}
	return NewJWTIssuer(os.Getenv("AUTH_JWT_SECRET"), ttl)
}

func (j *JWTIssuer) Issue(u entities.User) (string, entities.AuthClaims, error) {
	now := j.now().UTC().Truncate(time.Second)
	exp := now.Add(j.ttl)
	claims := agendaClaims{
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", entities.AuthClaims{}, err
	}
	return signed, entities.AuthClaims{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IssuedAt:  now,
		ExpiresAt: exp,
	}, nil
}

func (j *JWTIssuer) Verify(token string) (entities.AuthClaims, error) {
	var claims agendaClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return entities.AuthClaims{}, err
	}
	if claims.Subject == "" {
		return entities.AuthClaims{}, errors.New("token has no subject")
	}

	out := entities.AuthClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}
