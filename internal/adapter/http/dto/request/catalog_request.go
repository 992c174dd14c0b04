package request

import (
	"strings"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/usecase"
)

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required"`
	Notes string `json:"notes"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{Name: r.Name, Phone: r.Phone, Email: r.Email, Notes: r.Notes}
}

type ProfessionalRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
}

func (r ProfessionalRequest) ToInput() usecase.ProfessionalInput {
	return usecase.ProfessionalInput{Name: r.Name, Specialty: r.Specialty}
}

// ServiceRequest takes price as a pointer so a free service (0) is not mistaken for a
// missing field.
type ServiceRequest struct {
	Name     string   `json:"name" binding:"required"`
	Duration string   `json:"duration" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	in := usecase.ServiceInput{Name: r.Name, Duration: r.Duration}
	if r.Price != nil {
		in.Price = *r.Price
	}
	return in
}

// ListQuery is the field-scoped search shared by every list endpoint:
// ?field=<selector>&q=<substring>.
type ListQuery struct {
	Field string `form:"field"`
	Query string `form:"q"`
}

func (q ListQuery) ResolveField() agenda.Field {
	return agenda.Field(strings.ToLower(strings.TrimSpace(q.Field)))
}
