package services

import (
	"law_console_go/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Period
		wantErr  bool
	}{
		{name: "Daily", input: "daily", expected: PeriodDaily},
		{name: "Weekly", input: "weekly", expected: PeriodWeekly},
		{name: "Monthly", input: "monthly", expected: PeriodMonthly},
		{name: "Yearly", input: "yearly", expected: PeriodYearly},
		{name: "Unknown", input: "quarterly", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestInPeriod(t *testing.T) {
	// 2026-08-30 is a Sunday
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		t        time.Time
		period   Period
		expected bool
	}{
		{
			name:     "Same day morning",
			t:        time.Date(2026, 8, 30, 0, 0, 1, 0, time.Local),
			period:   PeriodDaily,
			expected: true,
		},
		{
			name:     "Yesterday",
			t:        time.Date(2026, 8, 29, 23, 59, 59, 0, time.Local),
			period:   PeriodDaily,
			expected: false,
		},
		{
			name:     "Sunday starts the week",
			t:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
			period:   PeriodWeekly,
			expected: true,
		},
		{
			name:     "Saturday before is the previous week",
			t:        time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local),
			period:   PeriodWeekly,
			expected: false,
		},
		{
			name:     "Following Saturday closes the week",
			t:        time.Date(2026, 9, 5, 23, 0, 0, 0, time.Local),
			period:   PeriodWeekly,
			expected: true,
		},
		{
			name:     "Same month different day",
			t:        time.Date(2026, 8, 1, 8, 0, 0, 0, time.Local),
			period:   PeriodMonthly,
			expected: true,
		},
		{
			name:     "Same month number in another year",
			t:        time.Date(2025, 8, 30, 15, 0, 0, 0, time.Local),
			period:   PeriodMonthly,
			expected: false,
		},
		{
			name:     "Same year",
			t:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
			period:   PeriodYearly,
			expected: true,
		},
		{
			name:     "Previous year",
			t:        time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local),
			period:   PeriodYearly,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InPeriod(tt.t, now, tt.period))
		})
	}
}

func TestFilterByPeriodUsesHistoryOverOpenedAt(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	// Opened today, but the only action-history entry is yesterday: the
	// history governs, so the daily window excludes the case
	c := models.Case{
		ID:       "1",
		Area:     models.AreaCivel,
		Status:   models.CaseStatusOpen,
		OpenedAt: now.Add(-time.Hour),
		ActionHistory: []models.ActionEntry{
			{Timestamp: now.AddDate(0, 0, -1), Action: "despacho"},
		},
	}

	assert.Empty(t, FilterByPeriod([]models.Case{c}, now, PeriodDaily))
	assert.Len(t, FilterByPeriod([]models.Case{c}, now, PeriodWeekly), 1)
}

func TestFilterByPeriodFallsBackToTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	// Without history, the last-modified timestamp is the sole history point
	updatedToday := models.Case{
		ID:        "1",
		OpenedAt:  now.AddDate(0, -2, 0),
		UpdatedAt: now.Add(-time.Minute),
	}
	updatedLastMonth := models.Case{
		ID:        "2",
		OpenedAt:  now.AddDate(0, -2, 0),
		UpdatedAt: now.AddDate(0, -1, 0),
	}

	filtered := FilterByPeriod([]models.Case{updatedToday, updatedLastMonth}, now, PeriodDaily)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestWeekStartIsAlwaysSunday(t *testing.T) {
	for day := 24; day <= 30; day++ {
		d := time.Date(2026, 8, day, 18, 30, 0, 0, time.Local)
		start := weekStart(d)
		assert.Equal(t, time.Sunday, start.Weekday())
		assert.False(t, start.After(d))
	}
}
