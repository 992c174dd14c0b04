package usecase

import (
	"context"
	"log"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/usecase/interfaces"
)

// CalendarResult holds the projected events and the appointments left out because their
// date or time could not be parsed.
type CalendarResult struct {
	Events  []agenda.CalendarEvent
	Skipped []agenda.SkippedAppointment
}

type ICalendarUseCase interface {
	Events(ctx context.Context, filter agenda.EventFilter) (CalendarResult, error)
}

type CalendarUseCase struct {
	snapshots interfaces.ISnapshotProvider
	loc       *time.Location
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(snapshots interfaces.ISnapshotProvider, loc *time.Location) *CalendarUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarUseCase{snapshots: snapshots, loc: loc}
}

func (u *CalendarUseCase) Events(ctx context.Context, filter agenda.EventFilter) (CalendarResult, error) {
	snapshot, err := u.snapshots.Load(ctx)
	if err != nil {
		return CalendarResult{}, err
	}

	events, skipped := agenda.ProjectEvents(snapshot, u.loc)
	for _, s := range skipped {
		log.Printf("[calendar][usecase] skipped appointment id=%s err=%v", s.AppointmentID, s.Err)
	}
	return CalendarResult{
		Events:  agenda.FilterEvents(events, filter),
		Skipped: skipped,
	}, nil
}
