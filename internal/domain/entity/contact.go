package entity

import "time"

// Contact is a message left through the public portfolio site.
// The dashboard only reads contacts.
type Contact struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Key returns the identifier used in routes.
func (c *Contact) Key() string { return c.ID }
