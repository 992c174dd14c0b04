package agenda

import (
	"errors"
	"testing"
	"time"

	"agenda_facil/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusColor_IsTotal(t *testing.T) {
	cases := map[entities.AppointmentStatus]Color{
		entities.AppointmentStatusPending:   ColorAmber,
		entities.AppointmentStatusConfirmed: ColorBlue,
		entities.AppointmentStatusCompleted: ColorGreen,
		entities.AppointmentStatusCancelled: ColorRed,
		"":                                  ColorGray,
		"Confirmed":                         ColorGray,
		"confirmado":                        ColorGray,
		"???":                               ColorGray,
	}
	for status, want := range cases {
		assert.Equal(t, want, StatusColor(status), "status %q", status)
	}
}

func TestProjectEvent_Resolved(t *testing.T) {
	s := haircutSnapshot()
	ev, err := ProjectEvent(Resolve(s.Appointments[0], s), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "1", ev.AppointmentID)
	assert.Equal(t, "Corte — Bob atendido por Ana — Serviço: Haircut às 10:00", ev.Title)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, ColorBlue, ev.Color)
	assert.Equal(t, "Bob", ev.ClientName)
}

func TestProjectEvent_Placeholders(t *testing.T) {
	a := haircutSnapshot().Appointments[0]
	ev, err := ProjectEvent(Resolve(a, Snapshot{}), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "Corte — Cliente atendido por Profissional — Serviço: Não definido às 10:00", ev.Title)
	assert.Empty(t, ev.ClientName)
	assert.Empty(t, ev.ProfessionalName)
	assert.Empty(t, ev.ServiceName)
}

func TestProjectEvent_FixedSixtyMinutes(t *testing.T) {
	s := haircutSnapshot()
	for _, d := range []string{"15min", "2h", "", "not a duration"} {
		s.Services[0].Duration = d
		ev, err := ProjectEvent(Resolve(s.Appointments[0], s), time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 60*time.Minute, ev.End.Sub(ev.Start), "duration label %q", d)
	}
}

func TestProjectEvent_UsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	s := haircutSnapshot()
	ev, err := ProjectEvent(Resolve(s.Appointments[0], s), loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC), ev.Start.UTC())
}

func TestProjectEvent_MalformedTemporalInput(t *testing.T) {
	cases := []struct{ date, tm string }{
		{"2024-13-05", "10:00"},
		{"05/03/2024", "10:00"},
		{"2024-03-05", "25:00"},
		{"2024-03-05", ""},
		{"", "10:00"},
	}
	for _, tc := range cases {
		a := haircutSnapshot().Appointments[0]
		a.Date, a.Time = tc.date, tc.tm
		_, err := ProjectEvent(Resolve(a, Snapshot{}), time.UTC)
		assert.True(t, errors.Is(err, ErrMalformedTemporalInput), "date=%q time=%q err=%v", tc.date, tc.tm, err)
	}
}

func TestProjectEvent_AcceptsSeconds(t *testing.T) {
	a := haircutSnapshot().Appointments[0]
	a.Time = "10:00:30"
	ev, err := ProjectEvent(Resolve(a, Snapshot{}), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 30, ev.Start.Second())
}

func TestProjectEvents_SkipsMalformed(t *testing.T) {
	s := haircutSnapshot()
	bad := s.Appointments[0]
	bad.ID = "2"
	bad.Time = "later"
	s.Appointments = append(s.Appointments, bad)

	events, skipped := ProjectEvents(s, time.UTC)
	require.Len(t, events, 1)
	assert.Equal(t, "1", events[0].AppointmentID)
	require.Len(t, skipped, 1)
	assert.Equal(t, "2", skipped[0].AppointmentID)
	assert.ErrorIs(t, skipped[0].Err, ErrMalformedTemporalInput)
}

func TestProjectEvents_FirstMatchWinsOnDuplicateIDs(t *testing.T) {
	s := haircutSnapshot()
	s.Clients = append(s.Clients, entities.Client{ID: "1", Name: "Clone"})
	s.Professionals = append(s.Professionals, entities.Professional{ID: "1", Name: "Impostor"})
	s.Services = append(s.Services, entities.Service{ID: "1", Name: "Duplicate", Price: 999})

	events, skipped := ProjectEvents(s, time.UTC)
	require.Empty(t, skipped)
	require.Len(t, events, 1)
	assert.Equal(t, "Bob", events[0].ClientName)
	assert.Equal(t, "Ana", events[0].ProfessionalName)
	assert.Equal(t, "Haircut", events[0].ServiceName)
}

func TestProjectEvents_Empty(t *testing.T) {
	events, skipped := ProjectEvents(Snapshot{}, time.UTC)
	assert.Empty(t, events)
	assert.Empty(t, skipped)
}

func TestFilterEvents(t *testing.T) {
	base := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	events := []CalendarEvent{
		{AppointmentID: "a", ProfessionalID: "p1", ServiceID: "s1", Status: entities.AppointmentStatusPending, Start: base, End: base.Add(EventDuration)},
		{AppointmentID: "b", ProfessionalID: "p2", ServiceID: "s1", Status: entities.AppointmentStatusConfirmed, Start: base.AddDate(0, 0, 1), End: base.AddDate(0, 0, 1).Add(EventDuration)},
		{AppointmentID: "c", ProfessionalID: "p1", ServiceID: "s2", Status: entities.AppointmentStatusConfirmed, Start: base.AddDate(0, 1, 0), End: base.AddDate(0, 1, 0).Add(EventDuration)},
	}

	ids := func(evs []CalendarEvent) []string {
		out := []string{}
		for _, e := range evs {
			out = append(out, e.AppointmentID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(FilterEvents(events, EventFilter{})))
	assert.Equal(t, []string{"a", "c"}, ids(FilterEvents(events, EventFilter{ProfessionalID: "p1"})))
	assert.Equal(t, []string{"a", "b"}, ids(FilterEvents(events, EventFilter{ServiceID: "s1"})))
	assert.Equal(t, []string{"b", "c"}, ids(FilterEvents(events, EventFilter{Status: entities.AppointmentStatusConfirmed})))

	monthStart, monthEnd := MonthWindow(base, time.UTC)
	assert.Equal(t, []string{"a", "b"}, ids(FilterEvents(events, EventFilter{From: monthStart, To: monthEnd})))
	// An event still running at From overlaps the window.
	assert.Equal(t, []string{"a", "b", "c"}, ids(FilterEvents(events, EventFilter{From: base.Add(30 * time.Minute)})))
	assert.Equal(t, []string{"b", "c"}, ids(FilterEvents(events, EventFilter{From: base.Add(EventDuration)})))
}
