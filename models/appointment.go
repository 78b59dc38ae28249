package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a calendar fixture ("agenda"). Served read-only alongside
// the billing fixtures; never mutated by the console.
type Appointment struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title      string    `gorm:"not null" json:"title"`
	Location   string    `json:"location,omitempty"`
	StartsAt   time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt     time.Time `gorm:"not null" json:"ends_at"`
	ClientName string    `json:"client_name,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
}

// BeforeCreate hook to generate UUID
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
