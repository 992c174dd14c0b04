package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteICS(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2024, 5, 10, 14, 30, 0, 0, loc)
	events := []agenda.CalendarEvent{
		{
			AppointmentID: "a1",
			Title:         "Corte — Ana atendido por Carla — Serviço: Corte às 14:30",
			Start:         start,
			End:           start.Add(agenda.EventDuration),
			Status:        entities.AppointmentStatusConfirmed,
			Color:         agenda.ColorBlue,
		},
		{
			AppointmentID: "a2",
			Title:         "Legado",
			Start:         start,
			End:           start.Add(agenda.EventDuration),
			Status:        "arquivado",
			Color:         agenda.ColorGray,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, events, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	vevents := cal.Events()
	require.Len(t, vevents, 2)

	first := vevents[0]
	assert.Equal(t, "a1@agenda-facil", first.Props.Get(ical.PropUID).Value)
	summary, err := first.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, events[0].Title, summary)
	assert.Equal(t, "CONFIRMED", first.Props.Get(ical.PropStatus).Value)
	assert.Equal(t, "royalblue", first.Props.Get("COLOR").Value)
	assert.Equal(t, "20240510T173000Z", first.Props.Get(ical.PropDateTimeStart).Value)
	assert.Equal(t, "20240510T183000Z", first.Props.Get(ical.PropDateTimeEnd).Value)

	assert.Nil(t, vevents[1].Props.Get(ical.PropStatus))
	assert.Equal(t, "#6b7280", vevents[1].Props.Get("X-AGENDA-COLOR").Value)
}

func TestWriteICS_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, nil, time.Now()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, out, "PRODID:"+ProductID)
	assert.NotContains(t, out, "VEVENT")
}
