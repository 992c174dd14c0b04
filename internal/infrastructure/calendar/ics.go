// Package calendar renders projected agenda events as an iCalendar feed.
package calendar

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/domain/entities"

	"github.com/emersion/go-ical"
)

const (
	ProductID    = "-//Agenda Facil//Calendar//PT-BR"
	CalendarName = "Agenda Fácil"
	uidDomain    = "agenda-facil"

	propCalName  = "X-WR-CALNAME"
	propColor    = "COLOR"
	propColorHex = "X-AGENDA-COLOR"
)

// cssColors maps status colors to CSS3 names, as required by the COLOR property.
var cssColors = map[string]string{
	agenda.ColorAmber.Name: "gold",
	agenda.ColorBlue.Name:  "royalblue",
	agenda.ColorGreen.Name: "limegreen",
	agenda.ColorRed.Name:   "tomato",
	agenda.ColorGray.Name:  "gray",
}

// WriteICS encodes events as a VCALENDAR with one VEVENT each. Event times are written
// in UTC; stamp is the DTSTAMP of every event.
func WriteICS(w io.Writer, events []agenda.CalendarEvent, stamp time.Time) error {
	if len(events) == 0 {
		_, err := io.WriteString(w, emptyCalendar())
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(propCalName, CalendarName)

	dtStamp := ical.NewProp(ical.PropDateTimeStamp)
	dtStamp.SetDateTime(stamp.UTC())

	for _, ev := range events {
		cal.Children = append(cal.Children, toVEvent(ev, dtStamp).Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("encode ics: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func toVEvent(ev agenda.CalendarEvent, dtStamp *ical.Prop) *ical.Event {
	e := ical.NewEvent()
	e.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", ev.AppointmentID, uidDomain))
	e.Props.Set(dtStamp)

	start := ical.NewProp(ical.PropDateTimeStart)
	start.SetDateTime(ev.Start.UTC())
	e.Props.Set(start)
	end := ical.NewProp(ical.PropDateTimeEnd)
	end.SetDateTime(ev.End.UTC())
	e.Props.Set(end)

	e.Props.SetText(ical.PropSummary, ev.Title)
	if s := eventStatus(ev.Status); s != "" {
		e.Props.SetText(ical.PropStatus, s)
	}
	if name, ok := cssColors[ev.Color.Name]; ok {
		e.Props.SetText(propColor, name)
	}
	e.Props.SetText(propColorHex, ev.Color.Hex)
	return e
}

func eventStatus(s entities.AppointmentStatus) string {
	switch s {
	case entities.AppointmentStatusPending:
		return "TENTATIVE"
	case entities.AppointmentStatusConfirmed, entities.AppointmentStatusCompleted:
		return "CONFIRMED"
	case entities.AppointmentStatusCancelled:
		return "CANCELLED"
	default:
		return ""
	}
}

func emptyCalendar() string {
	return "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:" + ProductID + "\r\n" +
		propCalName + ":" + CalendarName + "\r\n" +
		"END:VCALENDAR\r\n"
}
