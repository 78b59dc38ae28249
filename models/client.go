package models

import "time"

// Client status constants
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Client represents a law-office client. Cases reference clients by ID; the
// relationship is a weak back-reference, so removing a client never cascades
// to its cases.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Document  string    `json:"document,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Hidden    bool      `json:"hidden"`
}

// IsActive checks if the client is active and visible
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive && !c.Hidden
}
