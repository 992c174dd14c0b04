package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase"
	"agenda_facil/pkg"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>" header
// and stores the token claims in the gin context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, pkg.NewDomainErrorSimple("MISSING_TOKEN", "Missing bearer token", http.StatusUnauthorized))
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, usecase.ErrInvalidToken) {
				log.Printf("[auth][middleware] authenticate failed err=%v", err)
			}
			abortUnauthorized(c, pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (entities.AuthClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return entities.AuthClaims{}, false
	}
	claims, ok := v.(entities.AuthClaims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, appErr *pkg.AppError) {
	c.Header("WWW-Authenticate", `Bearer realm="agenda"`)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
