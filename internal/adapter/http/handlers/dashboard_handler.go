package handlers

import (
	"errors"
	"net/http"
	"time"

	request "agenda_facil/internal/adapter/http/dto/request"
	response "agenda_facil/internal/adapter/http/dto/response"
	"agenda_facil/internal/usecase"
	"agenda_facil/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	loc     *time.Location
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardHandler{usecase: uc, loc: loc}
}

// Monthly answers the dashboard cards for ?month=YYYY-MM, or the current month.
//
// @Summary      Monthly dashboard
// @Tags         dashboard
// @Produce      json
// @Param        month query string false "YYYY-MM, defaults to the current month"
// @Success      200 {object} response.MonthlyReportResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /dashboard/monthly [get]
func (h *DashboardHandler) Monthly(c *gin.Context) {
	var q request.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidQuery)
		return
	}
	reference, err := q.ResolveReference(h.loc)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}

	report, err := h.usecase.Monthly(c.Request.Context(), reference)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMonthlyReport(report))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_MONTH", "month must be YYYY-MM", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
