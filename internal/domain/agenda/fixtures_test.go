package agenda

import "agenda_facil/internal/domain/entities"

func haircutSnapshot() Snapshot {
	return Snapshot{
		Clients:       []entities.Client{{ID: "1", Name: "Bob", Phone: "+55 11 91234-5678", Email: "bob@example.com"}},
		Professionals: []entities.Professional{{ID: "1", Name: "Ana", Specialty: "Cabelo"}},
		Services:      []entities.Service{{ID: "1", Name: "Haircut", Duration: "30min", Price: 50}},
		Appointments: []entities.Appointment{{
			ID:             "1",
			Title:          "Corte",
			Date:           "2024-03-05",
			Time:           "10:00",
			ClientID:       "1",
			ProfessionalID: "1",
			ServiceID:      "1",
			Status:         entities.AppointmentStatusConfirmed,
		}},
	}
}
