package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	request "agenda_facil/internal/adapter/http/dto/request"
	response "agenda_facil/internal/adapter/http/dto/response"
	"agenda_facil/internal/infrastructure/calendar"
	"agenda_facil/internal/usecase"
	"agenda_facil/internal/usecase/interfaces"
	"agenda_facil/pkg"

	"github.com/gin-gonic/gin"
)

const icsContentType = "text/calendar; charset=utf-8"

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
	loc     *time.Location
	clock   interfaces.IClock
}

func NewCalendarHandler(uc usecase.ICalendarUseCase, loc *time.Location, clock interfaces.IClock) *CalendarHandler {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = usecase.SystemClock{}
	}
	return &CalendarHandler{usecase: uc, loc: loc, clock: clock}
}

// @Summary      Calendar events
// @Tags         calendar
// @Produce      json
// @Param        professional_id query string false "Professional ID"
// @Param        service_id query string false "Service ID"
// @Param        status query string false "Appointment status"
// @Param        from query string false "Window start (YYYY-MM-DD or RFC 3339)"
// @Param        to query string false "Window end, exclusive"
// @Success      200 {object} response.CalendarResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	result, ok := h.events(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarResult(result))
}

// @Summary      Calendar events as an iCalendar feed
// @Tags         calendar
// @Produce      text/calendar
// @Param        professional_id query string false "Professional ID"
// @Param        service_id query string false "Service ID"
// @Param        status query string false "Appointment status"
// @Param        from query string false "Window start (YYYY-MM-DD or RFC 3339)"
// @Param        to query string false "Window end, exclusive"
// @Success      200 {string} string
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /calendar/events.ics [get]
func (h *CalendarHandler) ExportICS(c *gin.Context) {
	result, ok := h.events(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := calendar.WriteICS(&buf, result.Events, h.clock.Now()); err != nil {
		respondError(c, internalError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="agenda.ics"`)
	c.Data(http.StatusOK, icsContentType, buf.Bytes())
}

func (h *CalendarHandler) events(c *gin.Context) (usecase.CalendarResult, bool) {
	var q request.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidQuery)
		return usecase.CalendarResult{}, false
	}
	filter, err := q.ToFilter(h.loc)
	if err != nil {
		respondError(c, mapCalendarError(err))
		return usecase.CalendarResult{}, false
	}

	result, err := h.usecase.Events(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapCalendarError(err))
		return usecase.CalendarResult{}, false
	}
	return result, true
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidWindow):
		return pkg.NewDomainErrorSimple("INVALID_WINDOW", "from/to must be YYYY-MM-DD or RFC 3339 and to must be after from", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
