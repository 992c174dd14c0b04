package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"agenda_facil/internal/adapter/http/handlers/mocks"
	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClientRouter(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.POST("/v1/clients", h.CreateClient)
	r.GET("/v1/clients", h.ListClients)
	r.GET("/v1/clients/:id", h.GetClient)
	r.PUT("/v1/clients/:id", h.UpdateClient)
	r.DELETE("/v1/clients/:id", h.DeleteClient)
	return r, uc
}

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newClientRouter(t)

		w := perform(r, http.MethodPost, "/v1/clients", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		r, _ := newClientRouter(t)

		w := perform(r, http.MethodPost, "/v1/clients", `{"name":"Ana","email":"ana@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.ClientInput{Name: "Ana", Phone: "123", Email: "ana@example.com"}).
			Return(entities.Client{}, usecase.ErrInvalidClientPhone)

		w := perform(r, http.MethodPost, "/v1/clients", `{"name":"Ana","phone":"123","email":"ana@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INVALID_PHONE" {
			t.Fatalf("expected INVALID_PHONE, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newClientRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Client{ID: "c-1", Name: "Ana", Phone: "+55 11 98765-4321", Email: "ana@example.com", CreatedAt: now, UpdatedAt: now}, nil)

		w := perform(r, http.MethodPost, "/v1/clients", `{"name":"Ana","phone":"11987654321","email":"ana@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["phone"] != "+55 11 98765-4321" {
			t.Fatalf("unexpected phone %v", body["phone"])
		}
	})
}

func TestClientHandler_GetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, usecase.ErrClientNotFound)

		w := perform(r, http.MethodGet, "/v1/clients/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.Client{ID: "c-1", Name: "Ana Maria"}, nil)

		w := perform(r, http.MethodPut, "/v1/clients/c-1", `{"name":"Ana Maria","phone":"11987654321","email":"ana@example.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		w := perform(r, http.MethodDelete, "/v1/clients/c-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete internal error", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(errors.New("boom"))

		w := perform(r, http.MethodDelete, "/v1/clients/c-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INTERNAL_ERROR" {
			t.Fatalf("expected INTERNAL_ERROR, got %s", code)
		}
	})
}

func TestClientHandler_ListClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("field scoped search", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().List(gomock.Any(), agenda.FieldEmail, "gmail").
			Return([]entities.Client{{ID: "c-1", Email: "ana@gmail.com"}}, nil)

		w := perform(r, http.MethodGet, "/v1/clients?field=Email&q=gmail", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 client, got %d", len(body))
		}
	})

	t.Run("unsupported field", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().List(gomock.Any(), agenda.Field("age"), "").
			Return(nil, agenda.ErrUnsupportedFilterField)

		w := perform(r, http.MethodGet, "/v1/clients?field=age", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "UNSUPPORTED_FILTER_FIELD" {
			t.Fatalf("expected UNSUPPORTED_FILTER_FIELD, got %s", code)
		}
	})
}
