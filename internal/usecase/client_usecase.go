package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrInvalidClientPhone = errors.New("invalid client phone")
	ErrInvalidClientEmail = errors.New("invalid client email")
)

// ClientInput carries the editable client fields.
type ClientInput struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// IClientUseCase exposes the client registry operations.
type IClientUseCase interface {
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	Update(ctx context.Context, id string, in ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, field agenda.Field, query string) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	in, err := validateClientInput(in)
	if err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] create failed id=%s err=%v", c.ID, err)
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] created id=%s", created.ID)
	return created, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in ClientInput) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	in, err := validateClientInput(in)
	if err != nil {
		return entities.Client{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if current.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	current.Name = in.Name
	current.Phone = in.Phone
	current.Email = in.Email
	current.Notes = in.Notes
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		log.Printf("[client][usecase] update failed id=%s err=%v", id, err)
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

// Delete removes the client. Appointments pointing at it are kept and show a placeholder.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[client][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrClientNotFound
	}
	log.Printf("[client][usecase] deleted id=%s", id)
	return nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

// List returns the clients whose field contains query. An empty field means "name".
func (u *ClientUseCase) List(ctx context.Context, field agenda.Field, query string) ([]entities.Client, error) {
	if field == "" {
		field = agenda.FieldName
	}
	if _, err := agenda.FilterClients(field, "", nil); err != nil {
		return nil, err
	}
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return agenda.FilterClients(field, query, clients)
}

func validateClientInput(in ClientInput) (ClientInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Name == "" {
		return ClientInput{}, ErrInvalidClientName
	}
	if in.Email == "" {
		return ClientInput{}, ErrInvalidClientEmail
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return ClientInput{}, ErrInvalidClientEmail
	}
	phone, err := NormalizePhone(in.Phone)
	if err != nil {
		return ClientInput{}, err
	}
	in.Phone = phone
	return in, nil
}
