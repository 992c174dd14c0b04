package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidServiceName     = errors.New("invalid service name")
	ErrInvalidServiceDuration = errors.New("invalid service duration")
	ErrInvalidServicePrice    = errors.New("invalid service price")
)

// ServiceInput carries the editable service fields. Duration is a display label
// ("30 min", "1h") and is never parsed.
type ServiceInput struct {
	Name     string
	Duration string
	Price    float64
}

// IServiceUseCase exposes the service catalog operations.
type IServiceUseCase interface {
	Create(ctx context.Context, in ServiceInput) (entities.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, field agenda.Field, query string) ([]entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, in ServiceInput) (entities.Service, error) {
	in, err := validateServiceInput(in)
	if err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Duration:  in.Duration,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[service][usecase] create failed id=%s err=%v", s.ID, err)
		return entities.Service{}, err
	}
	log.Printf("[service][usecase] created id=%s price=%.2f", created.ID, created.Price)
	return created, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	in, err := validateServiceInput(in)
	if err != nil {
		return entities.Service{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if current.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	current.Name = in.Name
	current.Duration = in.Duration
	current.Price = in.Price
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		log.Printf("[service][usecase] update failed id=%s err=%v", id, err)
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[service][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrServiceNotFound
	}
	log.Printf("[service][usecase] deleted id=%s", id)
	return nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, field agenda.Field, query string) ([]entities.Service, error) {
	if field == "" {
		field = agenda.FieldName
	}
	if _, err := agenda.FilterServices(field, "", nil); err != nil {
		return nil, err
	}
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return agenda.FilterServices(field, query, services)
}

func validateServiceInput(in ServiceInput) (ServiceInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Duration = strings.TrimSpace(in.Duration)
	if in.Name == "" {
		return ServiceInput{}, ErrInvalidServiceName
	}
	if in.Duration == "" {
		return ServiceInput{}, ErrInvalidServiceDuration
	}
	if in.Price < 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return ServiceInput{}, ErrInvalidServicePrice
	}
	return in, nil
}
