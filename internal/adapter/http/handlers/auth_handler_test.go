package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"agenda_facil/internal/adapter/http/handlers/mocks"
	"agenda_facil/internal/adapter/http/middleware"
	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/register", h.Register)
	r.POST("/v1/auth/login", h.Login)
	r.GET("/v1/auth/me", middleware.RequireAuth(uc), h.Me)
	return r, uc
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid email", err: usecase.ErrInvalidEmail, status: http.StatusBadRequest},
		{name: "weak password", err: usecase.ErrWeakPassword, status: http.StatusBadRequest},
		{name: "duplicate", err: usecase.ErrEmailAlreadyInUse, status: http.StatusConflict},
		{name: "storage failure", err: errors.New("put failed"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newAuthRouter(t)
			uc.EXPECT().Register(gomock.Any(), "Ana", "ana@example.com", "secret1").Return(entities.User{}, tc.err)

			w := perform(r, http.MethodPost, "/v1/auth/register", `{"name":"Ana","email":"ana@example.com","password":"secret1"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Register(gomock.Any(), "Ana", "ana@example.com", "secret1").
			Return(entities.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}, nil)

		w := perform(r, http.MethodPost, "/v1/auth/register", `{"name":"Ana","email":"ana@example.com","password":"secret1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if got := w.Body.String(); containsAny(got, "hash", "password") {
			t.Fatalf("password material leaked: %s", got)
		}
	})
}

func TestAuthHandler_Register_PasswordTooLong(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, uc := newAuthRouter(t)
	long := strings.Repeat("x", 80)
	uc.EXPECT().Register(gomock.Any(), "", "ana@example.com", long).Return(entities.User{}, usecase.ErrPasswordTooLong)

	w := perform(r, http.MethodPost, "/v1/auth/register", `{"email":"ana@example.com","password":"`+long+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := decodeErrorCode(t, w); code != "PASSWORD_TOO_LONG" {
		t.Fatalf("expected PASSWORD_TOO_LONG, got %s", code)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing password", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "ana@example.com", "secret1").Return(usecase.Session{}, usecase.ErrUserNotFound)

		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@example.com","password":"secret1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "ana@example.com", "nope").Return(usecase.Session{}, usecase.ErrWrongPassword)

		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@example.com","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "ana@example.com", "secret1").Return(usecase.Session{
			AccessToken: "token-1",
			Claims:      entities.AuthClaims{UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)},
		}, nil)

		w := perform(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@example.com","password":"secret1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !containsAny(w.Body.String(), `"access_token":"token-1"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, uc := newAuthRouter(t)
	uc.EXPECT().Authenticate(gomock.Any(), "token-1").Return(entities.AuthClaims{UserID: "u-1", Email: "ana@example.com", Name: "Ana"}, nil)

	w := performWithHeader(r, http.MethodGet, "/v1/auth/me", "Authorization", "Bearer token-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !containsAny(w.Body.String(), `"email":"ana@example.com"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
