package services

import (
	"fmt"
	"law_console_go/models"
	"law_console_go/store"
	"time"

	"github.com/google/uuid"
)

// CaseService is the mutation API for the case collection. It assigns
// identifiers and timestamps and enforces no other invariant; a failed
// store write is logged by the store and silent to the caller, whose
// in-memory result remains authoritative.
type CaseService struct {
	store *store.Store
}

// NewCaseService creates a case service backed by the given store
func NewCaseService(st *store.Store) *CaseService {
	return &CaseService{store: st}
}

// CreateCaseInput carries the caller-supplied fields for a new case
type CreateCaseInput struct {
	Title      string  `json:"title"`
	ClientID   string  `json:"client_id"`
	Area       string  `json:"area"`
	ClaimValue float64 `json:"claim_value"`
	Notes      string  `json:"notes"`
}

// UpdateCaseInput carries a partial update; nil fields are left untouched
type UpdateCaseInput struct {
	Title      *string  `json:"title,omitempty"`
	ClientID   *string  `json:"client_id,omitempty"`
	Area       *string  `json:"area,omitempty"`
	Status     *string  `json:"status,omitempty"`
	ClaimValue *float64 `json:"claim_value,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	Hidden     *bool    `json:"hidden,omitempty"`
	Deleted    *bool    `json:"deleted,omitempty"`
}

// CreateCase appends a new case to the collection and persists it. New cases
// start open, visible and not deleted, with opened and last-modified
// timestamps set to now.
func (s *CaseService) CreateCase(input CreateCaseInput) *models.Case {
	now := time.Now()
	cases := s.store.LoadCases()

	newCase := models.Case{
		ID:         uuid.New().String(),
		CaseNumber: NextCaseNumber(cases, now),
		Title:      input.Title,
		ClientID:   input.ClientID,
		Area:       input.Area,
		Status:     models.CaseStatusOpen,
		ClaimValue: input.ClaimValue,
		Notes:      input.Notes,
		OpenedAt:   now,
		UpdatedAt:  now,
		ActionHistory: []models.ActionEntry{
			{Timestamp: now, Action: "processo criado"},
		},
	}

	cases = append(cases, newCase)
	s.store.SaveCases(cases)
	return &newCase
}

// UpdateCase applies a partial update in place, refreshes the last-modified
// timestamp and appends an action-history entry. The opened timestamp is
// immutable. Returns false when no case has the given ID.
func (s *CaseService) UpdateCase(id string, input UpdateCaseInput) bool {
	now := time.Now()
	cases := s.store.LoadCases()

	for i := range cases {
		if cases[i].ID != id {
			continue
		}

		action := "processo atualizado"
		if input.Title != nil {
			cases[i].Title = *input.Title
		}
		if input.ClientID != nil {
			cases[i].ClientID = *input.ClientID
		}
		if input.Area != nil {
			cases[i].Area = *input.Area
		}
		if input.Status != nil {
			// Transitions are unconstrained: any status may follow any other
			action = fmt.Sprintf("status alterado: %s -> %s", cases[i].Status, *input.Status)
			cases[i].Status = *input.Status
		}
		if input.ClaimValue != nil {
			cases[i].ClaimValue = *input.ClaimValue
		}
		if input.Notes != nil {
			cases[i].Notes = *input.Notes
		}
		if input.Hidden != nil {
			cases[i].Hidden = *input.Hidden
		}
		if input.Deleted != nil {
			cases[i].Deleted = *input.Deleted
			if *input.Deleted {
				action = "processo removido"
			}
		}

		cases[i].UpdatedAt = now
		cases[i].ActionHistory = append(cases[i].ActionHistory, models.ActionEntry{
			Timestamp: now,
			Action:    action,
		})

		s.store.SaveCases(cases)
		return true
	}

	return false
}

// DeleteCase soft-deletes a case. Records are never physically erased.
func (s *CaseService) DeleteCase(id string) bool {
	deleted := true
	return s.UpdateCase(id, UpdateCaseInput{Deleted: &deleted})
}

// ListCases returns the current collection, filtered to active records
// unless includeHidden is set. Deleted records are never listed.
func (s *CaseService) ListCases(includeHidden bool) []models.Case {
	cases := s.store.LoadCases()
	listed := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if c.Deleted {
			continue
		}
		if c.Hidden && !includeHidden {
			continue
		}
		listed = append(listed, c)
	}
	return listed
}

// GetCase looks up a single case by ID, including hidden and deleted ones
func (s *CaseService) GetCase(id string) (*models.Case, bool) {
	for _, c := range s.store.LoadCases() {
		if c.ID == id {
			return &c, true
		}
	}
	return nil, false
}

// NextCaseNumber generates the next sequential case number for the year.
// Format: PROC-{YEAR}-{SEQUENCE}, e.g. PROC-2026-00042.
func NextCaseNumber(cases []models.Case, now time.Time) string {
	year := now.Year()
	prefix := fmt.Sprintf("PROC-%d-", year)

	maxSequence := 0
	for _, c := range cases {
		var seq int
		if _, err := fmt.Sscanf(c.CaseNumber, prefix+"%d", &seq); err == nil && seq > maxSequence {
			maxSequence = seq
		}
	}

	return fmt.Sprintf("PROC-%d-%05d", year, maxSequence+1)
}
