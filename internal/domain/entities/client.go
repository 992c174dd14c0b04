package entities

import "time"

// Client (cliente) is a person who books services.
//
// Phone is stored in its canonical display form: "+55 XX XXXXX-XXXX".
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
