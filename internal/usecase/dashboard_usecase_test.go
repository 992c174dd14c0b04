package usecase

import (
	"context"
	"testing"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	mock_interfaces "agenda_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Monthly(t *testing.T) {
	snapshot := agenda.Snapshot{
		Services: []entities.Service{{ID: "s1", Name: "Corte", Price: 50}},
		Appointments: []entities.Appointment{
			{ID: "a1", Date: "2024-05-02", Time: "10:00", ServiceID: "s1"},
			{ID: "a2", Date: "2024-06-02", Time: "10:00", ServiceID: "s1"},
		},
	}

	t.Run("uses clock when reference is zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockISnapshotProvider(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		uc := NewDashboardUseCase(snapshots, clock, time.UTC)

		clock.EXPECT().Now().Return(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
		snapshots.EXPECT().Load(gomock.Any()).Return(snapshot, nil)

		report, err := uc.Monthly(context.Background(), time.Time{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if report.Month != time.June || report.Count != 1 || report.TotalRevenue != 50 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("explicit reference skips clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockISnapshotProvider(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		uc := NewDashboardUseCase(snapshots, clock, time.UTC)

		snapshots.EXPECT().Load(gomock.Any()).Return(snapshot, nil)

		report, err := uc.Monthly(context.Background(), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if report.Year != 2024 || report.Month != time.May || report.Count != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if len(report.PerService) != 1 || report.PerService[0].Name != "Corte" {
			t.Fatalf("unexpected tallies: %+v", report.PerService)
		}
	})
}
