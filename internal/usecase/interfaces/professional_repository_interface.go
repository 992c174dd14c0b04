package interfaces

import (
	"context"

	"agenda_facil/internal/domain/entities"
)

// IProfessionalRepository abstracts persistence for Professional.

type IProfessionalRepository interface {
	Create(ctx context.Context, p entities.Professional) (entities.Professional, error)
	GetByID(ctx context.Context, id string) (entities.Professional, error)
	List(ctx context.Context) ([]entities.Professional, error)
	Update(ctx context.Context, p entities.Professional) (entities.Professional, error)
	Delete(ctx context.Context, id string) (bool, error)
}
