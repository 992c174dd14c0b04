package agenda

import (
	"fmt"
	"time"

	"agenda_facil/internal/domain/entities"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// timeLayouts are tried in order; browsers may submit seconds for time inputs.
var timeLayouts = []string{TimeLayout, "15:04:05"}

// StartOf combines the appointment date and time in loc (time.Local when nil).
func StartOf(a entities.Appointment, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(DateLayout+" "+layout, a.Date+" "+a.Time, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date=%q time=%q", ErrMalformedTemporalInput, a.Date, a.Time)
}

// MonthWindow returns [start, end) of the calendar month containing ref, in loc.
func MonthWindow(ref time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	ref = ref.In(loc)
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
