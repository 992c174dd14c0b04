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

type ProfessionalHandler struct {
	usecase usecase.IProfessionalUseCase
}

func NewProfessionalHandler(uc usecase.IProfessionalUseCase) *ProfessionalHandler {
	return &ProfessionalHandler{usecase: uc}
}

// @Summary      Create a professional
// @Tags         professionals
// @Accept       json
// @Produce      json
// @Param        payload body request.ProfessionalRequest true "Professional data"
// @Success      201 {object} response.ProfessionalResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /professionals [post]
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var payload request.ProfessionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapProfessionalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProfessional(p))
}

// @Summary      Update a professional
// @Tags         professionals
// @Accept       json
// @Produce      json
// @Param        id path string true "Professional ID"
// @Param        payload body request.ProfessionalRequest true "Professional data"
// @Success      200 {object} response.ProfessionalResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /professionals/{id} [put]
func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	var payload request.ProfessionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapProfessionalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfessional(p))
}

// @Summary      Delete a professional
// @Tags         professionals
// @Produce      json
// @Param        id path string true "Professional ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /professionals/{id} [delete]
func (h *ProfessionalHandler) DeleteProfessional(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapProfessionalError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Get a professional
// @Tags         professionals
// @Produce      json
// @Param        id path string true "Professional ID"
// @Success      200 {object} response.ProfessionalResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /professionals/{id} [get]
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapProfessionalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfessional(p))
}

// @Summary      List professionals with an optional field-scoped search
// @Tags         professionals
// @Produce      json
// @Param        field query string false "Field to match"
// @Param        q query string false "Substring, case-insensitive"
// @Success      200 {array} response.ProfessionalResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /professionals [get]
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidQuery)
		return
	}

	ps, err := h.usecase.List(c.Request.Context(), q.ResolveField(), q.Query)
	if err != nil {
		respondError(c, mapProfessionalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfessionals(ps))
}

func mapProfessionalError(err error) *pkg.AppError {
	if appErr, ok := mapFilterError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProfessionalID), errors.Is(err, usecase.ErrInvalidProfessionalName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
