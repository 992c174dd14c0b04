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

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        payload body request.ServiceRequest true "Service data"
// @Success      201 {object} response.ServiceResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        payload body request.ServiceRequest true "Service data"
// @Success      200 {object} response.ServiceResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	s, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Param        id path string true "Service ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id path string true "Service ID"
// @Success      200 {object} response.ServiceResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// @Summary      List services with an optional field-scoped search
// @Tags         services
// @Produce      json
// @Param        field query string false "Field to match"
// @Param        q query string false "Substring, case-insensitive"
// @Success      200 {array} response.ServiceResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidQuery)
		return
	}

	ss, err := h.usecase.List(c.Request.Context(), q.ResolveField(), q.Query)
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(ss))
}

func mapServiceError(err error) *pkg.AppError {
	if appErr, ok := mapFilterError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceName), errors.Is(err, usecase.ErrInvalidServiceDuration):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServicePrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Price must be zero or positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
