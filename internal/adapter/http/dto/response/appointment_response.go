package response

import (
	"time"

	"agenda_facil/internal/domain/agenda"
)

// AppointmentResponse is an appointment joined with its references. Unresolved
// references leave the name empty and the price null.
type AppointmentResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	ServiceID        string    `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	ServicePrice     *float64  `json:"service_price"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromResolvedAppointment(r agenda.ResolvedAppointment) AppointmentResponse {
	a := r.Appointment
	res := AppointmentResponse{
		ID:               a.ID,
		Title:            a.Title,
		Date:             a.Date,
		Time:             a.Time,
		Status:           string(a.Status),
		ClientID:         a.ClientID,
		ClientName:       r.ClientName(),
		ProfessionalID:   a.ProfessionalID,
		ProfessionalName: r.ProfessionalName(),
		ServiceID:        a.ServiceID,
		ServiceName:      r.ServiceName(),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if r.Service != nil {
		price := r.Service.Price
		res.ServicePrice = &price
	}
	return res
}

func FromResolvedAppointments(rs []agenda.ResolvedAppointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromResolvedAppointment(r))
	}
	return out
}
