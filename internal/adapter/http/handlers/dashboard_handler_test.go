package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"agenda_facil/internal/adapter/http/handlers/mocks"
	"agenda_facil/internal/domain/agenda"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Monthly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIDashboardUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, time.UTC)
		r := gin.New()
		r.GET("/v1/dashboard/monthly", h.Monthly)
		return r, uc
	}

	t.Run("invalid month", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodGet, "/v1/dashboard/monthly?month=03-2024", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("current month uses zero reference", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Monthly(gomock.Any(), time.Time{}).Return(agenda.MonthlyReport{Year: 2024, Month: time.March}, nil)

		w := perform(r, http.MethodGet, "/v1/dashboard/monthly", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("requested month", func(t *testing.T) {
		r, uc := setup(t)
		ref := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Monthly(gomock.Any(), ref).Return(agenda.MonthlyReport{
			Year:         2024,
			Month:        time.February,
			Count:        2,
			TotalRevenue: 130,
			PerService:   []agenda.Tally{{ID: "s-1", Name: "Corte", Count: 2}},
		}, nil)

		w := perform(r, http.MethodGet, "/v1/dashboard/monthly?month=2024-02", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Month        string  `json:"month"`
			Appointments int     `json:"appointments"`
			TotalRevenue float64 `json:"total_revenue"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Month != "2024-02" || body.Appointments != 2 || body.TotalRevenue != 130 {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}
