package request

import (
	"strings"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase"
)

type AppointmentRequest struct {
	Title          string `json:"title" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ClientID       string `json:"client_id" binding:"required"`
	ProfessionalID string `json:"professional_id" binding:"required"`
	ServiceID      string `json:"service_id" binding:"required"`
	Status         string `json:"status"`
}

func (r AppointmentRequest) ToInput() usecase.AppointmentInput {
	return usecase.AppointmentInput{
		Title:          r.Title,
		Date:           r.Date,
		Time:           r.Time,
		ClientID:       r.ClientID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Status:         entities.AppointmentStatus(strings.TrimSpace(r.Status)),
	}
}

type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r AppointmentStatusRequest) ResolveStatus() entities.AppointmentStatus {
	return entities.AppointmentStatus(strings.TrimSpace(r.Status))
}
