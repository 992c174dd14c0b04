package handlers

import (
	"errors"
	"net/http"

	request "agenda_facil/internal/adapter/http/dto/request"
	response "agenda_facil/internal/adapter/http/dto/response"
	"agenda_facil/internal/adapter/http/middleware"
	"agenda_facil/internal/usecase"
	"agenda_facil/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// @Summary      Register an operator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body request.RegisterRequest true "Credentials"
// @Success      201 {object} response.UserResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body request.LoginRequest true "Credentials"
// @Success      200 {object} response.TokenResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Me must run behind middleware.RequireAuth.
//
// @Summary      Current operator
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.UserResponse
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondError(c, pkg.NewDomainErrorSimple("MISSING_TOKEN", "Missing bearer token", http.StatusUnauthorized))
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password must have at least 6 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordTooLong):
		return pkg.NewDomainErrorSimple("PASSWORD_TOO_LONG", "Password must have at most 72 bytes", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyInUse):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_IN_USE", "Email already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWrongPassword):
		return pkg.NewDomainErrorSimple("WRONG_PASSWORD", "Wrong password", http.StatusUnauthorized)
	default:
		return internalError(err)
	}
}
