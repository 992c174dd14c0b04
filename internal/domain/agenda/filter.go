package agenda

import (
	"fmt"
	"strconv"
	"strings"

	"agenda_facil/internal/domain/entities"
)

// Kind names a filterable collection.
type Kind string

const (
	KindClients       Kind = "clients"
	KindProfessionals Kind = "professionals"
	KindServices      Kind = "services"
	KindAppointments  Kind = "appointments"
)

// Field selects the attribute a filter matches against.
type Field string

const (
	FieldName         Field = "name"
	FieldPhone        Field = "phone"
	FieldEmail        Field = "email"
	FieldNotes        Field = "notes"
	FieldSpecialty    Field = "specialty"
	FieldDuration     Field = "duration"
	FieldPrice        Field = "price"
	FieldTitle        Field = "title"
	FieldClient       Field = "client"
	FieldProfessional Field = "professional"
	FieldService      Field = "service"
	FieldDate         Field = "date"
	FieldTime         Field = "time"
	FieldStatus       Field = "status"
)

var kindFields = map[Kind][]Field{
	KindClients:       {FieldName, FieldPhone, FieldEmail, FieldNotes},
	KindProfessionals: {FieldName, FieldSpecialty},
	KindServices:      {FieldName, FieldDuration, FieldPrice},
	KindAppointments:  {FieldTitle, FieldClient, FieldProfessional, FieldService, FieldDate, FieldTime, FieldStatus},
}

// Fields returns the selectors accepted for kind, or nil for an unknown kind.
func Fields(kind Kind) []Field {
	fields, ok := kindFields[kind]
	if !ok {
		return nil
	}
	return append([]Field(nil), fields...)
}

// Filter filters the kind collection of s and returns a snapshot sharing the other
// collections unchanged.
func Filter(kind Kind, field Field, query string, s Snapshot) (Snapshot, error) {
	out := s
	var err error
	switch kind {
	case KindClients:
		out.Clients, err = FilterClients(field, query, s.Clients)
	case KindProfessionals:
		out.Professionals, err = FilterProfessionals(field, query, s.Professionals)
	case KindServices:
		out.Services, err = FilterServices(field, query, s.Services)
	case KindAppointments:
		out.Appointments, err = FilterAppointments(field, query, s)
	default:
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnsupportedFilterKind, kind)
	}
	if err != nil {
		return Snapshot{}, err
	}
	return out, nil
}

func FilterClients(field Field, query string, clients []entities.Client) ([]entities.Client, error) {
	var value func(entities.Client) string
	switch field {
	case FieldName:
		value = func(c entities.Client) string { return c.Name }
	case FieldPhone:
		value = func(c entities.Client) string { return c.Phone }
	case FieldEmail:
		value = func(c entities.Client) string { return c.Email }
	case FieldNotes:
		value = func(c entities.Client) string { return c.Notes }
	default:
		return nil, unsupportedField(KindClients, field)
	}
	return filterBy(clients, query, value), nil
}

func FilterProfessionals(field Field, query string, professionals []entities.Professional) ([]entities.Professional, error) {
	var value func(entities.Professional) string
	switch field {
	case FieldName:
		value = func(p entities.Professional) string { return p.Name }
	case FieldSpecialty:
		value = func(p entities.Professional) string { return p.Specialty }
	default:
		return nil, unsupportedField(KindProfessionals, field)
	}
	return filterBy(professionals, query, value), nil
}

func FilterServices(field Field, query string, services []entities.Service) ([]entities.Service, error) {
	var value func(entities.Service) string
	switch field {
	case FieldName:
		value = func(sv entities.Service) string { return sv.Name }
	case FieldDuration:
		value = func(sv entities.Service) string { return sv.Duration }
	case FieldPrice:
		value = func(sv entities.Service) string { return FormatPrice(sv.Price) }
	default:
		return nil, unsupportedField(KindServices, field)
	}
	return filterBy(services, query, value), nil
}

// FilterAppointments filters s.Appointments. The client, professional and service
// selectors match the resolved reference name; a dangling reference matches as "".
func FilterAppointments(field Field, query string, s Snapshot) ([]entities.Appointment, error) {
	var value func(entities.Appointment) string
	switch field {
	case FieldTitle:
		value = func(a entities.Appointment) string { return a.Title }
	case FieldDate:
		value = func(a entities.Appointment) string { return a.Date }
	case FieldTime:
		value = func(a entities.Appointment) string { return a.Time }
	case FieldStatus:
		value = func(a entities.Appointment) string { return string(a.Status) }
	case FieldClient, FieldProfessional, FieldService:
		j := newJoiner(s)
		value = func(a entities.Appointment) string {
			r := j.resolve(a)
			switch field {
			case FieldClient:
				return r.ClientName()
			case FieldProfessional:
				return r.ProfessionalName()
			default:
				return r.ServiceName()
			}
		}
	default:
		return nil, unsupportedField(KindAppointments, field)
	}
	return filterBy(s.Appointments, query, value), nil
}

// FormatPrice renders a price the way it is matched by the price filter.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func filterBy[T any](items []T, query string, value func(T) string) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q == "" || strings.Contains(strings.ToLower(value(it)), q) {
			out = append(out, it)
		}
	}
	return out
}

func unsupportedField(kind Kind, field Field) error {
	return fmt.Errorf("%w: %q for %s", ErrUnsupportedFilterField, field, kind)
}
