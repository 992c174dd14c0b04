// Package agenda turns snapshots of the booking collections into the read models used by
// the CRUD lists, the calendar and the dashboard.
//
// Every function is pure: it reads the snapshot it is given, allocates fresh results and
// never touches storage. Callers load the snapshot through the repository ports first.
package agenda

import (
	"errors"

	"agenda_facil/internal/domain/entities"
)

var (
	ErrMalformedTemporalInput = errors.New("malformed temporal input")
	ErrUnsupportedFilterField = errors.New("unsupported filter field")
	ErrUnsupportedFilterKind  = errors.New("unsupported filter kind")
)

// Snapshot is a point-in-time copy of the four collections.
// Identifiers are expected to be unique inside each collection.
type Snapshot struct {
	Clients       []entities.Client
	Professionals []entities.Professional
	Services      []entities.Service
	Appointments  []entities.Appointment
}
