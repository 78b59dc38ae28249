package services

import (
	"law_console_go/models"
	"math"
	"sort"
	"time"
)

// RecentLimit is the fixed size of the recency read-model
const RecentLimit = 10

// StatusBreakdown partitions active cases (hidden=false, deleted=false) into
// the four status buckets. Hidden and removed counts are reported separately
// and never merged into the buckets. A status outside the fixed enumeration
// is grouped under its literal value in Outros rather than dropped.
type StatusBreakdown struct {
	EmAndamento int            `json:"em_andamento"`
	Suspenso    int            `json:"suspenso"`
	Arquivado   int            `json:"arquivado"`
	Concluido   int            `json:"concluido"`
	Ocultos     int            `json:"ocultos"`
	Removidos   int            `json:"removidos"`
	Outros      map[string]int `json:"outros,omitempty"`
}

// AreaCount is one group of the area breakdown. Percentages are rounded
// independently per group and need not sum to exactly 100.
type AreaCount struct {
	Area       string `json:"area"`
	Total      int    `json:"total"`
	Percentual int    `json:"percentual"`
}

// DashboardStats bundles the aggregates the dashboard renders
type DashboardStats struct {
	TotalAtivos int             `json:"total_ativos"`
	Status      StatusBreakdown `json:"status"`
	Areas       []AreaCount     `json:"areas"`
	Recentes    []models.Case   `json:"recentes"`
}

// PeriodStats is DashboardStats recomputed over a calendar window
type PeriodStats struct {
	Periodo     Period          `json:"periodo"`
	TotalAtivos int             `json:"total_ativos"`
	Status      StatusBreakdown `json:"status"`
	Areas       []AreaCount     `json:"areas"`
	Recentes    []models.Case   `json:"recentes"`
}

// activeCases filters to records included in default views
func activeCases(cases []models.Case) []models.Case {
	active := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if c.IsActive() {
			active = append(active, c)
		}
	}
	return active
}

// ComputeStatusBreakdown partitions cases by status
func ComputeStatusBreakdown(cases []models.Case) StatusBreakdown {
	var b StatusBreakdown
	for _, c := range cases {
		if c.Deleted {
			b.Removidos++
			continue
		}
		if c.Hidden {
			b.Ocultos++
			continue
		}
		switch c.Status {
		case models.CaseStatusOpen:
			b.EmAndamento++
		case models.CaseStatusSuspended:
			b.Suspenso++
		case models.CaseStatusArchived:
			b.Arquivado++
		case models.CaseStatusClosed:
			b.Concluido++
		default:
			if b.Outros == nil {
				b.Outros = make(map[string]int)
			}
			b.Outros[c.Status]++
		}
	}
	return b
}

// ComputeAreaBreakdown groups active cases by legal area. Each group carries
// its absolute count and its percentage of the active total, rounded to the
// nearest integer. Areas outside the fixed enumeration group under their
// literal value. Groups are ordered by count descending, then area name.
func ComputeAreaBreakdown(cases []models.Case) []AreaCount {
	active := activeCases(cases)
	counts := make(map[string]int)
	for _, c := range active {
		counts[c.Area]++
	}

	breakdown := make([]AreaCount, 0, len(counts))
	for area, total := range counts {
		breakdown = append(breakdown, AreaCount{
			Area:       area,
			Total:      total,
			Percentual: int(math.Round(float64(total) * 100 / float64(len(active)))),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Total != breakdown[j].Total {
			return breakdown[i].Total > breakdown[j].Total
		}
		return breakdown[i].Area < breakdown[j].Area
	})
	return breakdown
}

// RecentCases returns the n most recently opened active cases
func RecentCases(cases []models.Case, n int) []models.Case {
	recent := activeCases(cases)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].OpenedAt.After(recent[j].OpenedAt)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// FilterByPeriod keeps cases with at least one history point inside the
// window. Cases without action history qualify through their last-modified
// (or opened) timestamp, which substitutes as the sole history point.
func FilterByPeriod(cases []models.Case, now time.Time, p Period) []models.Case {
	filtered := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		for _, point := range c.HistoryPoints() {
			if InPeriod(point, now, p) {
				filtered = append(filtered, c)
				break
			}
		}
	}
	return filtered
}

// ComputeDashboardStats derives the full dashboard read-model
func ComputeDashboardStats(cases []models.Case) DashboardStats {
	return DashboardStats{
		TotalAtivos: len(activeCases(cases)),
		Status:      ComputeStatusBreakdown(cases),
		Areas:       ComputeAreaBreakdown(cases),
		Recentes:    RecentCases(cases, RecentLimit),
	}
}

// ComputePeriodStats recomputes the breakdowns over one calendar window
func ComputePeriodStats(cases []models.Case, now time.Time, p Period) PeriodStats {
	windowed := FilterByPeriod(cases, now, p)
	return PeriodStats{
		Periodo:     p,
		TotalAtivos: len(activeCases(windowed)),
		Status:      ComputeStatusBreakdown(windowed),
		Areas:       ComputeAreaBreakdown(windowed),
		Recentes:    RecentCases(windowed, RecentLimit),
	}
}
