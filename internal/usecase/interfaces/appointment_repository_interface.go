package interfaces

import (
	"context"

	"agenda_facil/internal/domain/entities"
)

// IAppointmentRepository abstracts persistence for Appointment.
//
// Deleting a client, professional or service never cascades here: appointments may
// keep dangling references and the read side renders placeholders for them.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
