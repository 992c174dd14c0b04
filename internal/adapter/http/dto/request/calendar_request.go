package request

import (
	"errors"
	"strings"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
)

var (
	ErrInvalidWindow = errors.New("invalid calendar window")
	ErrInvalidMonth  = errors.New("invalid month")
)

const MonthLayout = "2006-01"

// CalendarQuery narrows the calendar feed. from/to accept a date (YYYY-MM-DD, midnight
// in the agenda time zone) or an RFC 3339 instant.
type CalendarQuery struct {
	ProfessionalID string `form:"professional_id"`
	ServiceID      string `form:"service_id"`
	Status         string `form:"status"`
	From           string `form:"from"`
	To             string `form:"to"`
}

func (q CalendarQuery) ToFilter(loc *time.Location) (agenda.EventFilter, error) {
	from, err := parseInstant(q.From, loc)
	if err != nil {
		return agenda.EventFilter{}, err
	}
	to, err := parseInstant(q.To, loc)
	if err != nil {
		return agenda.EventFilter{}, err
	}
	if !from.IsZero() && !to.IsZero() && !to.After(from) {
		return agenda.EventFilter{}, ErrInvalidWindow
	}
	return agenda.EventFilter{
		ProfessionalID: strings.TrimSpace(q.ProfessionalID),
		ServiceID:      strings.TrimSpace(q.ServiceID),
		Status:         entities.AppointmentStatus(strings.TrimSpace(q.Status)),
		From:           from,
		To:             to,
	}, nil
}

func parseInstant(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(agenda.DateLayout, v, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidWindow
}

// MonthQuery selects the dashboard month as ?month=YYYY-MM; empty means the current month.
type MonthQuery struct {
	Month string `form:"month"`
}

func (q MonthQuery) ResolveReference(loc *time.Location) (time.Time, error) {
	v := strings.TrimSpace(q.Month)
	if v == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthLayout, v, loc)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return t, nil
}
