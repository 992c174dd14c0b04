package interfaces

import (
	"context"

	"agenda_facil/internal/domain/entities"
)

// IUserRepository abstracts persistence for operator accounts, keyed by email.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
