package agenda

import (
	"fmt"
	"time"

	"agenda_facil/internal/domain/entities"
)

// EventDuration is the length of every calendar event. The service duration label is
// free text and is not used here.
const EventDuration = 60 * time.Minute

const (
	placeholderClient       = "Cliente"
	placeholderProfessional = "Profissional"
	placeholderService      = "Não definido"
)

// Color is the status color used by calendar renderers.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var (
	ColorAmber = Color{Name: "amber", Hex: "#facc15"}
	ColorBlue  = Color{Name: "blue", Hex: "#3b82f6"}
	ColorGreen = Color{Name: "green", Hex: "#22c55e"}
	ColorRed   = Color{Name: "red", Hex: "#ef4444"}
	ColorGray  = Color{Name: "gray", Hex: "#6b7280"}
)

// StatusColor maps every status, known or not, to a color.
func StatusColor(s entities.AppointmentStatus) Color {
	switch s {
	case entities.AppointmentStatusPending:
		return ColorAmber
	case entities.AppointmentStatusConfirmed:
		return ColorBlue
	case entities.AppointmentStatusCompleted:
		return ColorGreen
	case entities.AppointmentStatusCancelled:
		return ColorRed
	default:
		return ColorGray
	}
}

// CalendarEvent is an appointment placed on the calendar.
// Name fields are empty when the reference is dangling; Title carries placeholders instead.
type CalendarEvent struct {
	AppointmentID    string
	Title            string
	Start            time.Time
	End              time.Time
	Status           entities.AppointmentStatus
	Color            Color
	ClientID         string
	ProfessionalID   string
	ServiceID        string
	ClientName       string
	ProfessionalName string
	ServiceName      string
}

// SkippedAppointment reports an appointment left out of a projection.
type SkippedAppointment struct {
	AppointmentID string
	Err           error
}

func ProjectEvent(r ResolvedAppointment, loc *time.Location) (CalendarEvent, error) {
	a := r.Appointment
	start, err := StartOf(a, loc)
	if err != nil {
		return CalendarEvent{}, fmt.Errorf("appointment %s: %w", a.ID, err)
	}

	return CalendarEvent{
		AppointmentID:    a.ID,
		Title:            eventTitle(r),
		Start:            start,
		End:              start.Add(EventDuration),
		Status:           a.Status,
		Color:            StatusColor(a.Status),
		ClientID:         a.ClientID,
		ProfessionalID:   a.ProfessionalID,
		ServiceID:        a.ServiceID,
		ClientName:       r.ClientName(),
		ProfessionalName: r.ProfessionalName(),
		ServiceName:      r.ServiceName(),
	}, nil
}

func eventTitle(r ResolvedAppointment) string {
	return fmt.Sprintf("%s — %s atendido por %s — Serviço: %s às %s",
		r.Appointment.Title,
		orPlaceholder(r.ClientName(), r.Client != nil, placeholderClient),
		orPlaceholder(r.ProfessionalName(), r.Professional != nil, placeholderProfessional),
		orPlaceholder(r.ServiceName(), r.Service != nil, placeholderService),
		r.Appointment.Time,
	)
}

func orPlaceholder(name string, resolved bool, placeholder string) string {
	if !resolved {
		return placeholder
	}
	return name
}

// ProjectEvents projects every appointment of the snapshot, in order.
// Appointments with a malformed date or time are reported in skipped and left out.
func ProjectEvents(s Snapshot, loc *time.Location) (events []CalendarEvent, skipped []SkippedAppointment) {
	j := newJoiner(s)
	events = make([]CalendarEvent, 0, len(s.Appointments))
	for _, a := range s.Appointments {
		ev, err := ProjectEvent(j.resolve(a), loc)
		if err != nil {
			skipped = append(skipped, SkippedAppointment{AppointmentID: a.ID, Err: err})
			continue
		}
		events = append(events, ev)
	}
	return events, skipped
}

// EventFilter narrows the calendar. Zero fields do not filter.
// From/To select events overlapping [From, To).
type EventFilter struct {
	ProfessionalID string
	ServiceID      string
	Status         entities.AppointmentStatus
	From           time.Time
	To             time.Time
}

func (f EventFilter) Match(e CalendarEvent) bool {
	if f.ProfessionalID != "" && e.ProfessionalID != f.ProfessionalID {
		return false
	}
	if f.ServiceID != "" && e.ServiceID != f.ServiceID {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if !f.From.IsZero() && !e.End.After(f.From) {
		return false
	}
	if !f.To.IsZero() && !e.Start.Before(f.To) {
		return false
	}
	return true
}

func FilterEvents(events []CalendarEvent, f EventFilter) []CalendarEvent {
	out := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
