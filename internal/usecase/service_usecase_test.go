package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	mock_interfaces "agenda_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		cases := []struct {
			in  ServiceInput
			err error
		}{
			{ServiceInput{Duration: "30 min", Price: 10}, ErrInvalidServiceName},
			{ServiceInput{Name: "Corte", Price: 10}, ErrInvalidServiceDuration},
			{ServiceInput{Name: "Corte", Duration: "30 min", Price: -1}, ErrInvalidServicePrice},
			{ServiceInput{Name: "Corte", Duration: "30 min", Price: math.NaN()}, ErrInvalidServicePrice},
		}
		for _, tc := range cases {
			if _, err := uc.Create(context.Background(), tc.in); !errors.Is(err, tc.err) {
				t.Fatalf("%+v: expected %v, got %v", tc.in, tc.err, err)
			}
		}
	})

	t.Run("free service is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Price != 0 || s.Duration != "15 min" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.Create(context.Background(), ServiceInput{Name: "Avaliação", Duration: "15 min"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestServiceUseCase_UpdateDeleteList(t *testing.T) {
	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Service{ID: "s1", Name: "Corte", Duration: "30 min", Price: 40}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Price != 45.5 {
					t.Fatalf("unexpected price: %v", s.Price)
				}
				return s, nil
			},
		)

		if _, err := uc.Update(context.Background(), "s1", ServiceInput{Name: "Corte", Duration: "30 min", Price: 45.5}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("delete error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "s1").Return(false, errors.New("db"))

		if err := uc.Delete(context.Background(), "s1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("list by price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Service{
			{ID: "1", Name: "Corte", Price: 45.5},
			{ID: "2", Name: "Barba", Price: 30},
		}, nil)

		got, err := uc.List(context.Background(), agenda.FieldPrice, "45.5")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 1 || got[0].ID != "1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
