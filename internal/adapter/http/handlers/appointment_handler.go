package handlers

import (
	"errors"
	"net/http"

	request "agenda_facil/internal/adapter/http/dto/request"
	response "agenda_facil/internal/adapter/http/dto/response"
	"agenda_facil/internal/usecase"
	"agenda_facil/pkg"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves bookings. Every response carries the joined client,
// professional and service names.
type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

// @Summary      Create a appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        payload body request.AppointmentRequest true "Appointment data"
// @Success      201 {object} response.AppointmentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromResolvedAppointment(a))
}

// @Summary      Update a appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id path string true "Appointment ID"
// @Param        payload body request.AppointmentRequest true "Appointment data"
// @Success      200 {object} response.AppointmentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	a, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResolvedAppointment(a))
}

// @Summary      Change the appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id path string true "Appointment ID"
// @Param        payload body request.AppointmentStatusRequest true "New status"
// @Success      200 {object} response.AppointmentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var payload request.AppointmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	a, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		respondError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResolvedAppointment(a))
}

// @Summary      Delete a appointment
// @Tags         appointments
// @Produce      json
// @Param        id path string true "Appointment ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapAppointmentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Get a appointment
// @Tags         appointments
// @Produce      json
// @Param        id path string true "Appointment ID"
// @Success      200 {object} response.AppointmentResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResolvedAppointment(a))
}

// @Summary      List appointments with an optional field-scoped search
// @Tags         appointments
// @Produce      json
// @Param        field query string false "Field to match"
// @Param        q query string false "Substring, case-insensitive"
// @Success      200 {array} response.AppointmentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidQuery)
		return
	}

	as, err := h.usecase.List(c.Request.Context(), q.ResolveField(), q.Query)
	if err != nil {
		respondError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResolvedAppointments(as))
}

func mapAppointmentError(err error) *pkg.AppError {
	if appErr, ok := mapFilterError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrInvalidAppointmentTitle),
		errors.Is(err, usecase.ErrMissingAppointmentRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAppointmentDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE_TIME", "Date must be YYYY-MM-DD and time HH:MM", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAppointmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be pending, confirmed, completed or cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Referenced client not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Referenced professional not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Referenced service not found", http.StatusUnprocessableEntity)
	default:
		return internalError(err)
	}
}
