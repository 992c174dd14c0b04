package agenda

import (
	"time"

	"agenda_facil/internal/domain/entities"
)

// UnknownLabel names a tally whose reference could not be resolved.
const UnknownLabel = "Desconhecido"

// Tally counts appointments referencing one service or professional.
type Tally struct {
	ID    string
	Name  string
	Count int
}

// MonthlyReport is the dashboard summary of one calendar month.
type MonthlyReport struct {
	Year                    int
	Month                   time.Month
	Count                   int
	TotalRevenue            float64
	PerService              []Tally
	PerProfessional         []Tally
	ServicesRegistered      int
	ProfessionalsRegistered int
}

// MonthlySubset returns the appointments starting inside the month of ref, in snapshot
// order. Appointments whose date or time cannot be parsed never belong to a month.
func MonthlySubset(appointments []entities.Appointment, ref time.Time, loc *time.Location) []entities.Appointment {
	start, end := MonthWindow(ref, loc)
	out := make([]entities.Appointment, 0)
	for _, a := range appointments {
		at, err := StartOf(a, loc)
		if err != nil {
			continue
		}
		if !at.Before(start) && at.Before(end) {
			out = append(out, a)
		}
	}
	return out
}

// AggregateMonthly computes the dashboard figures for the month containing ref.
//
// Tallies are ordered by first appearance in the appointment list. An appointment with
// an empty service (or professional) identifier is counted and priced but not tallied
// under that relation.
func AggregateMonthly(s Snapshot, ref time.Time, loc *time.Location) MonthlyReport {
	start, _ := MonthWindow(ref, loc)
	report := MonthlyReport{
		Year:                    start.Year(),
		Month:                   start.Month(),
		PerService:              []Tally{},
		PerProfessional:         []Tally{},
		ServicesRegistered:      len(s.Services),
		ProfessionalsRegistered: len(s.Professionals),
	}

	j := newJoiner(s)
	services := newTallies()
	professionals := newTallies()
	for _, a := range MonthlySubset(s.Appointments, ref, loc) {
		r := j.resolve(a)
		report.Count++
		if r.Service != nil {
			report.TotalRevenue += r.Service.Price
		}
		services.add(a.ServiceID, r.ServiceName(), r.Service != nil)
		professionals.add(a.ProfessionalID, r.ProfessionalName(), r.Professional != nil)
	}
	report.PerService = services.list()
	report.PerProfessional = professionals.list()
	return report
}

type tallies struct {
	order []string
	byID  map[string]*Tally
}

func newTallies() *tallies {
	return &tallies{byID: map[string]*Tally{}}
}

func (t *tallies) add(id, name string, resolved bool) {
	if id == "" {
		return
	}
	if existing, ok := t.byID[id]; ok {
		existing.Count++
		return
	}
	if !resolved {
		name = UnknownLabel
	}
	t.byID[id] = &Tally{ID: id, Name: name, Count: 1}
	t.order = append(t.order, id)
}

func (t *tallies) list() []Tally {
	out := make([]Tally, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.byID[id])
	}
	return out
}
