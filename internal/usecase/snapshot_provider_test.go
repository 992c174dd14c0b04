package usecase

import (
	"context"
	"errors"
	"testing"

	"agenda_facil/internal/domain/entities"
	mock_interfaces "agenda_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRepositorySnapshotProvider_Load(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		p := NewRepositorySnapshotProvider(nil, nil, nil, nil)
		if _, err := p.Load(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		professionals := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		p := NewRepositorySnapshotProvider(clients, professionals, services, appointments)

		clients.EXPECT().List(gomock.Any()).Return(nil, nil)
		professionals.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := p.Load(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		professionals := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		p := NewRepositorySnapshotProvider(clients, professionals, services, appointments)

		clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c1"}}, nil)
		professionals.EXPECT().List(gomock.Any()).Return([]entities.Professional{{ID: "p1"}}, nil)
		services.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "s1"}}, nil)
		appointments.EXPECT().List(gomock.Any()).Return([]entities.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)

		s, err := p.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(s.Clients) != 1 || len(s.Professionals) != 1 || len(s.Services) != 1 || len(s.Appointments) != 2 {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
	})
}
