package handlers

import (
	"errors"
	"net/http"
	"testing"

	"agenda_facil/internal/adapter/http/handlers/mocks"
	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfessionalHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIProfessionalUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProfessionalUseCase(ctrl)
		h := NewProfessionalHandler(uc)
		r := gin.New()
		r.POST("/v1/professionals", h.CreateProfessional)
		r.GET("/v1/professionals", h.ListProfessionals)
		r.GET("/v1/professionals/:id", h.GetProfessional)
		r.PUT("/v1/professionals/:id", h.UpdateProfessional)
		r.DELETE("/v1/professionals/:id", h.DeleteProfessional)
		return r, uc
	}

	t.Run("create missing name", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/v1/professionals", `{"specialty":"Corte"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), usecase.ProfessionalInput{Name: "Bia", Specialty: "Corte"}).
			Return(entities.Professional{ID: "p-1", Name: "Bia", Specialty: "Corte"}, nil)

		w := perform(r, http.MethodPost, "/v1/professionals", `{"name":"Bia","specialty":"Corte"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Update(gomock.Any(), "p-9", gomock.Any()).Return(entities.Professional{}, usecase.ErrProfessionalNotFound)

		w := perform(r, http.MethodPut, "/v1/professionals/p-9", `{"name":"Bia"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by specialty", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any(), agenda.FieldSpecialty, "cor").Return([]entities.Professional{{ID: "p-1"}}, nil)

		w := perform(r, http.MethodGet, "/v1/professionals?field=specialty&q=cor", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get and delete", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Professional{ID: "p-1"}, nil)
		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(usecase.ErrProfessionalNotFound)

		if w := perform(r, http.MethodGet, "/v1/professionals/p-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := perform(r, http.MethodDelete, "/v1/professionals/p-1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIServiceUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)
		r := gin.New()
		r.POST("/v1/services", h.CreateService)
		r.GET("/v1/services", h.ListServices)
		r.GET("/v1/services/:id", h.GetService)
		r.PUT("/v1/services/:id", h.UpdateService)
		r.DELETE("/v1/services/:id", h.DeleteService)
		return r, uc
	}

	t.Run("missing price", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/v1/services", `{"name":"Corte","duration":"30 min"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("free service is accepted", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), usecase.ServiceInput{Name: "Avaliação", Duration: "15 min", Price: 0}).
			Return(entities.Service{ID: "s-1", Name: "Avaliação", Duration: "15 min"}, nil)

		w := perform(r, http.MethodPost, "/v1/services", `{"name":"Avaliação","duration":"15 min","price":0}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrInvalidServicePrice)

		w := perform(r, http.MethodPost, "/v1/services", `{"name":"Corte","duration":"30 min","price":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeErrorCode(t, w); code != "INVALID_PRICE" {
			t.Fatalf("expected INVALID_PRICE, got %s", code)
		}
	})

	t.Run("list repository failure", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any(), agenda.Field(""), "").Return(nil, errors.New("scan failed"))

		w := perform(r, http.MethodGet, "/v1/services", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("get, update and delete", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{}, usecase.ErrServiceNotFound)
		uc.EXPECT().Update(gomock.Any(), "s-1", gomock.Any()).Return(entities.Service{ID: "s-1", Price: 50}, nil)
		uc.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

		if w := perform(r, http.MethodGet, "/v1/services/s-1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := perform(r, http.MethodPut, "/v1/services/s-1", `{"name":"Corte","duration":"30 min","price":50}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := perform(r, http.MethodDelete, "/v1/services/s-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
