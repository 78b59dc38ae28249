package models

import "time"

// Task status constants
const (
	TaskStatusPending = "pending"
	TaskStatusDone    = "done"
)

// Task is a to-do item optionally linked to a case
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CaseID    string     `json:"case_id,omitempty"`
	Status    string     `json:"status"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Deleted   bool       `json:"deleted"`
}
