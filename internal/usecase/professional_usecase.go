package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProfessionalNotFound    = errors.New("professional not found")
	ErrInvalidProfessionalID   = errors.New("invalid professional id")
	ErrInvalidProfessionalName = errors.New("invalid professional name")
)

type ProfessionalInput struct {
	Name      string
	Specialty string
}

type IProfessionalUseCase interface {
	Create(ctx context.Context, in ProfessionalInput) (entities.Professional, error)
	Update(ctx context.Context, id string, in ProfessionalInput) (entities.Professional, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Professional, error)
	List(ctx context.Context, field agenda.Field, query string) ([]entities.Professional, error)
}

type ProfessionalUseCase struct {
	repo interfaces.IProfessionalRepository
}

var _ IProfessionalUseCase = (*ProfessionalUseCase)(nil)

func NewProfessionalUseCase(repo interfaces.IProfessionalRepository) *ProfessionalUseCase {
	return &ProfessionalUseCase{repo: repo}
}

func (u *ProfessionalUseCase) Create(ctx context.Context, in ProfessionalInput) (entities.Professional, error) {
	in, err := validateProfessionalInput(in)
	if err != nil {
		return entities.Professional{}, err
	}

	now := time.Now().UTC()
	p := entities.Professional{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Specialty: in.Specialty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[professional][usecase] create failed id=%s err=%v", p.ID, err)
		return entities.Professional{}, err
	}
	log.Printf("[professional][usecase] created id=%s", created.ID)
	return created, nil
}

func (u *ProfessionalUseCase) Update(ctx context.Context, id string, in ProfessionalInput) (entities.Professional, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Professional{}, ErrInvalidProfessionalID
	}
	in, err := validateProfessionalInput(in)
	if err != nil {
		return entities.Professional{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Professional{}, err
	}
	if current.ID == "" {
		return entities.Professional{}, ErrProfessionalNotFound
	}

	current.Name = in.Name
	current.Specialty = in.Specialty
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		log.Printf("[professional][usecase] update failed id=%s err=%v", id, err)
		return entities.Professional{}, err
	}
	if updated.ID == "" {
		return entities.Professional{}, ErrProfessionalNotFound
	}
	return updated, nil
}

func (u *ProfessionalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProfessionalID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[professional][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrProfessionalNotFound
	}
	log.Printf("[professional][usecase] deleted id=%s", id)
	return nil
}

func (u *ProfessionalUseCase) GetByID(ctx context.Context, id string) (entities.Professional, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Professional{}, ErrInvalidProfessionalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Professional{}, err
	}
	if p.ID == "" {
		return entities.Professional{}, ErrProfessionalNotFound
	}
	return p, nil
}

func (u *ProfessionalUseCase) List(ctx context.Context, field agenda.Field, query string) ([]entities.Professional, error) {
	if field == "" {
		field = agenda.FieldName
	}
	if _, err := agenda.FilterProfessionals(field, "", nil); err != nil {
		return nil, err
	}
	professionals, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return agenda.FilterProfessionals(field, query, professionals)
}

func validateProfessionalInput(in ProfessionalInput) (ProfessionalInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Specialty = strings.TrimSpace(in.Specialty)
	if in.Name == "" {
		return ProfessionalInput{}, ErrInvalidProfessionalName
	}
	return in, nil
}
