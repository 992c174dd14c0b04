package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, agenda.MonthlyReport{
		Year:            2024,
		Month:           time.March,
		Count:           3,
		TotalRevenue:    130,
		PerService:      []agenda.Tally{{ID: "s1", Name: "Corte", Count: 2}, {ID: "s9", Name: "Desconhecido", Count: 1}},
		PerProfessional: nil,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Month: 2024-03")
	assert.Contains(t, out, "Appointments: 3")
	assert.Contains(t, out, "R$ 130.00")
	assert.Contains(t, out, "Desconhecido")
	assert.Contains(t, out, "(none)")
}

func TestPrintEvents(t *testing.T) {
	loc = time.UTC
	start := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := printEvents(&buf, usecase.CalendarResult{
		Events: []agenda.CalendarEvent{{
			AppointmentID: "a1",
			Title:         "Corte — Ana atendido por Bia — Serviço: Corte às 14:30",
			Start:         start,
			End:           start.Add(agenda.EventDuration),
			Status:        entities.AppointmentStatusPending,
		}},
		Skipped: []agenda.SkippedAppointment{{AppointmentID: "a2", Err: errors.New("bad date")}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2024-03-10 14:30")
	assert.Contains(t, out, "15:30")
	assert.Contains(t, out, "1 event(s)")
	assert.Contains(t, out, "skipped a2: bad date")
}

func TestPrintMatches_Appointments(t *testing.T) {
	full := agenda.Snapshot{
		Clients:      []entities.Client{{ID: "c1", Name: "Ana"}},
		Appointments: []entities.Appointment{{ID: "a1", Date: "2024-03-10", Time: "14:30", ClientID: "c1", ProfessionalID: "gone"}},
	}

	var buf bytes.Buffer
	require.NoError(t, printMatches(&buf, agenda.KindAppointments, full, full))
	assert.Contains(t, buf.String(), "Ana")
	assert.Equal(t, agenda.FieldTitle, defaultField(agenda.KindAppointments))
	assert.Equal(t, agenda.FieldName, defaultField(agenda.KindServices))
}
