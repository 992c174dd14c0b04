package entities

import "time"

// AppointmentStatus is the booking state chosen by the operator.
//
// Domain notes:
//   - Any value of the enumeration may follow any other; no transition is enforced.
//   - Unknown values can still reach the read side (legacy data) and render as gray.

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists the enumeration in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

func (s AppointmentStatus) Valid() bool {
	for _, known := range AppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment (agendamento) links a client, a professional and a service at a date and time.
//
// Storage model:
//   - DynamoDB: table "appointments", PK id
//   - Redis: hash "<prefix>:agendamentos", field id
//
// Date is kept as "YYYY-MM-DD" and Time as "HH:MM"; no time zone is stored.
type Appointment struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	ClientID       string            `json:"client_id"`
	ProfessionalID string            `json:"professional_id"`
	ServiceID      string            `json:"service_id"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
