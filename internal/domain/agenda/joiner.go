package agenda

import "agenda_facil/internal/domain/entities"

// ResolvedAppointment is an appointment joined with its references.
// A nil reference means the foreign identifier matched nothing.
type ResolvedAppointment struct {
	Appointment  entities.Appointment
	Client       *entities.Client
	Professional *entities.Professional
	Service      *entities.Service
}

func (r ResolvedAppointment) ClientName() string {
	if r.Client == nil {
		return ""
	}
	return r.Client.Name
}

func (r ResolvedAppointment) ProfessionalName() string {
	if r.Professional == nil {
		return ""
	}
	return r.Professional.Name
}

func (r ResolvedAppointment) ServiceName() string {
	if r.Service == nil {
		return ""
	}
	return r.Service.Name
}

// Resolve joins one appointment against the snapshot collections.
// When an identifier is duplicated the first record in collection order wins.
func Resolve(a entities.Appointment, s Snapshot) ResolvedAppointment {
	return ResolvedAppointment{
		Appointment:  a,
		Client:       findByID(s.Clients, a.ClientID, func(c entities.Client) string { return c.ID }),
		Professional: findByID(s.Professionals, a.ProfessionalID, func(p entities.Professional) string { return p.ID }),
		Service:      findByID(s.Services, a.ServiceID, func(sv entities.Service) string { return sv.ID }),
	}
}

func findByID[T any](items []T, id string, idOf func(T) string) *T {
	if id == "" {
		return nil
	}
	for _, it := range items {
		if idOf(it) == id {
			found := it
			return &found
		}
	}
	return nil
}

// joiner resolves many appointments against the same snapshot without rescanning the
// reference collections for each one. It keeps the first-match rule of Resolve.
type joiner struct {
	clients       map[string]entities.Client
	professionals map[string]entities.Professional
	services      map[string]entities.Service
}

func newJoiner(s Snapshot) joiner {
	return joiner{
		clients:       indexByID(s.Clients, func(c entities.Client) string { return c.ID }),
		professionals: indexByID(s.Professionals, func(p entities.Professional) string { return p.ID }),
		services:      indexByID(s.Services, func(sv entities.Service) string { return sv.ID }),
	}
}

func indexByID[T any](items []T, idOf func(T) string) map[string]T {
	idx := make(map[string]T, len(items))
	for _, it := range items {
		id := idOf(it)
		if id == "" {
			continue
		}
		if _, seen := idx[id]; !seen {
			idx[id] = it
		}
	}
	return idx
}

func (j joiner) resolve(a entities.Appointment) ResolvedAppointment {
	r := ResolvedAppointment{Appointment: a}
	if c, ok := j.clients[a.ClientID]; ok {
		r.Client = &c
	}
	if p, ok := j.professionals[a.ProfessionalID]; ok {
		r.Professional = &p
	}
	if sv, ok := j.services[a.ServiceID]; ok {
		r.Service = &sv
	}
	return r
}
