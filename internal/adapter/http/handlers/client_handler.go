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

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload body request.ClientRequest true "Client data"
// @Success      201 {object} response.ClientResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client ID"
// @Param        payload body request.ClientRequest true "Client data"
// @Success      200 {object} response.ClientResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {object} response.ClientResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// @Summary      List clients with an optional field-scoped search
// @Tags         clients
// @Produce      json
// @Param        field query string false "Field to match"
// @Param        q query string false "Substring, case-insensitive"
// @Success      200 {array} response.ClientResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidQuery)
		return
	}

	clients, err := h.usecase.List(c.Request.Context(), q.ResolveField(), q.Query)
	if err != nil {
		respondError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func mapClientError(err error) *pkg.AppError {
	if appErr, ok := mapFilterError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Phone must have area code and 8 or 9 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
