package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice status constants
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusOverdue = "OVERDUE"
)

// Invoice is a billing fixture ("financeiro"). The console serves these
// read-only; they are seeded once and never mutated.
type Invoice struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientName  string     `gorm:"not null" json:"client_name"`
	Description string     `gorm:"type:text" json:"description"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Status      string     `gorm:"not null;default:PENDING" json:"status"`
	DueDate     time.Time  `gorm:"not null" json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
