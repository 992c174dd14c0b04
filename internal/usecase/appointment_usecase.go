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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentID     = errors.New("invalid appointment id")
	ErrInvalidAppointmentTitle  = errors.New("invalid appointment title")
	ErrInvalidAppointmentDate   = errors.New("invalid appointment date or time")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
	ErrMissingAppointmentRef    = errors.New("appointment requires client, professional and service")
)

type AppointmentInput struct {
	Title          string
	Date           string
	Time           string
	ClientID       string
	ProfessionalID string
	ServiceID      string
	Status         entities.AppointmentStatus
}

// IAppointmentUseCase exposes the booking operations.
//
// Reads return appointments already joined with their client, professional and
// service so callers never resolve references themselves.
type IAppointmentUseCase interface {
	Create(ctx context.Context, in AppointmentInput) (agenda.ResolvedAppointment, error)
	Update(ctx context.Context, id string, in AppointmentInput) (agenda.ResolvedAppointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (agenda.ResolvedAppointment, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (agenda.ResolvedAppointment, error)
	List(ctx context.Context, field agenda.Field, query string) ([]agenda.ResolvedAppointment, error)
}

type AppointmentUseCase struct {
	repo          interfaces.IAppointmentRepository
	clients       interfaces.IClientRepository
	professionals interfaces.IProfessionalRepository
	services      interfaces.IServiceRepository
	snapshots     interfaces.ISnapshotProvider
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(
	repo interfaces.IAppointmentRepository,
	clients interfaces.IClientRepository,
	professionals interfaces.IProfessionalRepository,
	services interfaces.IServiceRepository,
	snapshots interfaces.ISnapshotProvider,
) *AppointmentUseCase {
	return &AppointmentUseCase{
		repo:          repo,
		clients:       clients,
		professionals: professionals,
		services:      services,
		snapshots:     snapshots,
	}
}

func (u *AppointmentUseCase) Create(ctx context.Context, in AppointmentInput) (agenda.ResolvedAppointment, error) {
	in, err := validateAppointmentInput(in)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	resolved, err := u.lookupReferences(ctx, in)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}

	now := time.Now().UTC()
	a := entities.Appointment{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Date:           in.Date,
		Time:           in.Time,
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	log.Printf("[appointment][usecase] create start id=%s date=%s time=%s", a.ID, a.Date, a.Time)
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] create failed id=%s err=%v", a.ID, err)
		return agenda.ResolvedAppointment{}, err
	}
	resolved.Appointment = created
	return resolved, nil
}

func (u *AppointmentUseCase) Update(ctx context.Context, id string, in AppointmentInput) (agenda.ResolvedAppointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return agenda.ResolvedAppointment{}, ErrInvalidAppointmentID
	}
	in, err := validateAppointmentInput(in)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}

	current, err := u.get(ctx, id)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	resolved, err := u.lookupReferences(ctx, in)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}

	current.Title = in.Title
	current.Date = in.Date
	current.Time = in.Time
	current.ClientID = in.ClientID
	current.ProfessionalID = in.ProfessionalID
	current.ServiceID = in.ServiceID
	current.Status = in.Status
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.save(ctx, current)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	resolved.Appointment = updated
	return resolved, nil
}

// UpdateStatus sets any enumerated status; transitions are not restricted.
func (u *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (agenda.ResolvedAppointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return agenda.ResolvedAppointment{}, ErrInvalidAppointmentID
	}
	if !status.Valid() {
		return agenda.ResolvedAppointment{}, ErrInvalidAppointmentStatus
	}

	current, err := u.get(ctx, id)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	from := current.Status
	current.Status = status
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.save(ctx, current)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	log.Printf("[appointment][usecase] status changed id=%s from=%s to=%s", id, from, status)
	return u.resolve(ctx, updated)
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAppointmentID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[appointment][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	log.Printf("[appointment][usecase] deleted id=%s", id)
	return nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (agenda.ResolvedAppointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return agenda.ResolvedAppointment{}, ErrInvalidAppointmentID
	}
	a, err := u.get(ctx, id)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	return u.resolve(ctx, a)
}

// List filters appointments on field (default "title") and joins each match.
func (u *AppointmentUseCase) List(ctx context.Context, field agenda.Field, query string) ([]agenda.ResolvedAppointment, error) {
	if field == "" {
		field = agenda.FieldTitle
	}
	if _, err := agenda.FilterAppointments(field, "", agenda.Snapshot{}); err != nil {
		return nil, err
	}
	snapshot, err := u.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := agenda.FilterAppointments(field, query, snapshot)
	if err != nil {
		return nil, err
	}
	out := make([]agenda.ResolvedAppointment, 0, len(matches))
	for _, a := range matches {
		out = append(out, agenda.Resolve(a, snapshot))
	}
	return out, nil
}

func (u *AppointmentUseCase) get(ctx context.Context, id string) (entities.Appointment, error) {
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) save(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] update failed id=%s err=%v", a.ID, err)
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}

func (u *AppointmentUseCase) resolve(ctx context.Context, a entities.Appointment) (agenda.ResolvedAppointment, error) {
	snapshot, err := u.snapshots.Load(ctx)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	return agenda.Resolve(a, snapshot), nil
}

// lookupReferences checks that every referenced record exists at write time.
// Later deletions are tolerated and surface as unresolved references on reads.
func (u *AppointmentUseCase) lookupReferences(ctx context.Context, in AppointmentInput) (agenda.ResolvedAppointment, error) {
	c, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	if c.ID == "" {
		return agenda.ResolvedAppointment{}, ErrClientNotFound
	}
	p, err := u.professionals.GetByID(ctx, in.ProfessionalID)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	if p.ID == "" {
		return agenda.ResolvedAppointment{}, ErrProfessionalNotFound
	}
	s, err := u.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return agenda.ResolvedAppointment{}, err
	}
	if s.ID == "" {
		return agenda.ResolvedAppointment{}, ErrServiceNotFound
	}
	return agenda.ResolvedAppointment{Client: &c, Professional: &p, Service: &s}, nil
}

func validateAppointmentInput(in AppointmentInput) (AppointmentInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.ProfessionalID = strings.TrimSpace(in.ProfessionalID)
	in.ServiceID = strings.TrimSpace(in.ServiceID)

	if in.Title == "" {
		return AppointmentInput{}, ErrInvalidAppointmentTitle
	}
	if in.ClientID == "" || in.ProfessionalID == "" || in.ServiceID == "" {
		return AppointmentInput{}, ErrMissingAppointmentRef
	}
	// Writes take HH:MM only; StartOf stays lenient for stored legacy values.
	if _, err := time.Parse(agenda.DateLayout+" "+agenda.TimeLayout, in.Date+" "+in.Time); err != nil {
		return AppointmentInput{}, ErrInvalidAppointmentDate
	}
	if in.Status == "" {
		in.Status = entities.AppointmentStatusPending
	}
	if !in.Status.Valid() {
		return AppointmentInput{}, ErrInvalidAppointmentStatus
	}
	return in, nil
}
