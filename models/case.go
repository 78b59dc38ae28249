package models

import "time"

// Case status constants
const (
	CaseStatusOpen      = "open"
	CaseStatusSuspended = "suspended"
	CaseStatusArchived  = "archived"
	CaseStatusClosed    = "closed"
)

// Legal area constants (Brazilian practice areas)
const (
	AreaTrabalhista    = "Trabalhista"
	AreaCivel          = "Cível"
	AreaCriminal       = "Criminal"
	AreaTributario     = "Tributário"
	AreaPrevidenciario = "Previdenciário"
	AreaFamilia        = "Família"
	AreaEmpresarial    = "Empresarial"
	AreaConsumidor     = "Consumidor"
)

// ActionEntry is one entry in a case's chronological action history
type ActionEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
}

// Case represents a legal case ("processo")
type Case struct {
	ID         string  `json:"id"`
	CaseNumber string  `json:"case_number"`
	Title      string  `json:"title"`
	ClientID   string  `json:"client_id"`
	Area       string  `json:"area"`
	Status     string  `json:"status"`
	ClaimValue float64 `json:"claim_value"`

	OpenedAt  time.Time `json:"opened_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Notes         string        `json:"notes,omitempty"`
	ActionHistory []ActionEntry `json:"action_history,omitempty"`

	// Soft-state flags. Hidden records are excluded from default views but
	// counted separately; deleted records are excluded from both and counted
	// as "removidos". The two flags are orthogonal.
	Hidden  bool `json:"hidden"`
	Deleted bool `json:"deleted"`
}

// IsActive reports whether the case appears in default aggregation views
func (c *Case) IsActive() bool {
	return !c.Hidden && !c.Deleted
}

// HistoryPoints returns the timestamps used for period-window filtering.
// A case with no action history contributes its last-modified timestamp
// (or opened timestamp, when never updated) as its sole history point.
func (c *Case) HistoryPoints() []time.Time {
	if len(c.ActionHistory) > 0 {
		points := make([]time.Time, 0, len(c.ActionHistory))
		for _, entry := range c.ActionHistory {
			points = append(points, entry.Timestamp)
		}
		return points
	}
	if !c.UpdatedAt.IsZero() {
		return []time.Time{c.UpdatedAt}
	}
	return []time.Time{c.OpenedAt}
}

// IsValidCaseStatus checks if the status is one of the four fixed values
func IsValidCaseStatus(status string) bool {
	validStatuses := []string{
		CaseStatusOpen,
		CaseStatusSuspended,
		CaseStatusArchived,
		CaseStatusClosed,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidCaseArea checks if the area is part of the fixed enumeration
func IsValidCaseArea(area string) bool {
	validAreas := []string{
		AreaTrabalhista,
		AreaCivel,
		AreaCriminal,
		AreaTributario,
		AreaPrevidenciario,
		AreaFamilia,
		AreaEmpresarial,
		AreaConsumidor,
	}
	for _, a := range validAreas {
		if a == area {
			return true
		}
	}
	return false
}
