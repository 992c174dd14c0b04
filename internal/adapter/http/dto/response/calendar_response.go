package response

import (
	"fmt"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/usecase"
)

type CalendarEventResponse struct {
	AppointmentID    string    `json:"appointment_id"`
	Title            string    `json:"title"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Status           string    `json:"status"`
	Color            string    `json:"color"`
	ColorHex         string    `json:"color_hex"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	ServiceID        string    `json:"service_id"`
	ServiceName      string    `json:"service_name"`
}

type SkippedAppointmentResponse struct {
	AppointmentID string `json:"appointment_id"`
	Reason        string `json:"reason"`
}

type CalendarResponse struct {
	Events  []CalendarEventResponse      `json:"events"`
	Skipped []SkippedAppointmentResponse `json:"skipped"`
}

func FromCalendarEvent(e agenda.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		AppointmentID:    e.AppointmentID,
		Title:            e.Title,
		Start:            e.Start,
		End:              e.End,
		Status:           string(e.Status),
		Color:            e.Color.Name,
		ColorHex:         e.Color.Hex,
		ClientID:         e.ClientID,
		ClientName:       e.ClientName,
		ProfessionalID:   e.ProfessionalID,
		ProfessionalName: e.ProfessionalName,
		ServiceID:        e.ServiceID,
		ServiceName:      e.ServiceName,
	}
}

func FromCalendarResult(r usecase.CalendarResult) CalendarResponse {
	res := CalendarResponse{
		Events:  make([]CalendarEventResponse, 0, len(r.Events)),
		Skipped: make([]SkippedAppointmentResponse, 0, len(r.Skipped)),
	}
	for _, e := range r.Events {
		res.Events = append(res.Events, FromCalendarEvent(e))
	}
	for _, s := range r.Skipped {
		reason := ""
		if s.Err != nil {
			reason = s.Err.Error()
		}
		res.Skipped = append(res.Skipped, SkippedAppointmentResponse{AppointmentID: s.AppointmentID, Reason: reason})
	}
	return res
}

type TallyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthlyReportResponse struct {
	Month                   string          `json:"month"`
	Appointments            int             `json:"appointments"`
	TotalRevenue            float64         `json:"total_revenue"`
	PerService              []TallyResponse `json:"per_service"`
	PerProfessional         []TallyResponse `json:"per_professional"`
	ServicesRegistered      int             `json:"services_registered"`
	ProfessionalsRegistered int             `json:"professionals_registered"`
}

func FromMonthlyReport(r agenda.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		Month:                   fmt.Sprintf("%04d-%02d", r.Year, int(r.Month)),
		Appointments:            r.Count,
		TotalRevenue:            r.TotalRevenue,
		PerService:              fromTallies(r.PerService),
		PerProfessional:         fromTallies(r.PerProfessional),
		ServicesRegistered:      r.ServicesRegistered,
		ProfessionalsRegistered: r.ProfessionalsRegistered,
	}
}

func fromTallies(ts []agenda.Tally) []TallyResponse {
	out := make([]TallyResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, TallyResponse{ID: t.ID, Name: t.Name, Count: t.Count})
	}
	return out
}
