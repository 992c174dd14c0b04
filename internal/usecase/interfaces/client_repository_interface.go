package interfaces

import (
	"context"

	"agenda_facil/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client.
//
// Conventions shared by every agenda repository:
//   - GetByID and Update return a zero-value entity (empty ID) when nothing matches.
//   - Delete reports whether a record was removed.
//   - List returns records ordered by creation time.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
