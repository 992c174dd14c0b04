package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

var (
	ErrInvalidEmail      = errors.New("invalid email")
	ErrWeakPassword      = errors.New("password must have at least 6 characters")
	ErrPasswordTooLong   = errors.New("password must have at most 72 bytes")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrInvalidToken      = errors.New("invalid token")
)

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	Claims      entities.AuthClaims
}

type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Authenticate(ctx context.Context, token string) (entities.AuthClaims, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (entities.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return entities.User{}, err
	}
	if len(password) < MinPasswordLength {
		return entities.User{}, ErrWeakPassword
	}
	if len(password) > MaxPasswordLength {
		return entities.User{}, ErrPasswordTooLong
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyInUse
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		log.Printf("[auth][usecase] register failed email=%s err=%v", email, err)
		return entities.User{}, err
	}
	if created.ID == "" {
		// lost a race with a concurrent registration
		return entities.User{}, ErrEmailAlreadyInUse
	}
	log.Printf("[auth][usecase] registered id=%s", created.ID)
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Session{}, err
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if user.ID == "" {
		return Session{}, ErrUserNotFound
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Printf("[auth][usecase] login rejected id=%s", user.ID)
		return Session{}, ErrWrongPassword
	}

	token, claims, err := u.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, Claims: claims}, nil
}

func (u *AuthUseCase) Authenticate(_ context.Context, token string) (entities.AuthClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.AuthClaims{}, ErrInvalidToken
	}
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return entities.AuthClaims{}, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
