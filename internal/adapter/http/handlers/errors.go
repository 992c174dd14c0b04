package handlers

import (
	"errors"
	"log"
	"net/http"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapFilterError covers the search errors every list endpoint can return.
func mapFilterError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, agenda.ErrUnsupportedFilterField):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILTER_FIELD", "Unsupported filter field", http.StatusBadRequest), true
	case errors.Is(err, agenda.ErrUnsupportedFilterKind):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILTER_KIND", "Unsupported filter kind", http.StatusBadRequest), true
	default:
		return nil, false
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
