package entities

import "time"

// Service (serviço) is something a client can book.
//
// Duration is a free-text label such as "60min"; it is displayed, never parsed.
// Price is the estimated amount charged per appointment.
type Service struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Duration  string    `json:"duration"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
