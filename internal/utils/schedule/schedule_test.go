package schedule_test

import (
	"testing"
	"time"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/homevia/rent_ledger_app/internal/utils/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate_Weekly(t *testing.T) {
	next, err := schedule.NextDueDate(date(2025, time.March, 28), domain.FrequencyWeekly)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.April, 4), next)
}

func TestNextDueDate_Monthly(t *testing.T) {
	tests := []struct {
		name    string
		current time.Time
		want    time.Time
	}{
		{"mid month", date(2025, time.March, 15), date(2025, time.April, 15)},
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), date(2025, time.February, 28)},
		{"jan 31 clamps to feb 29 in leap year", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"mar 31 clamps to apr 30", date(2025, time.March, 31), date(2025, time.April, 30)},
		{"dec rolls into next year", date(2025, time.December, 10), date(2026, time.January, 10)},
		{"first of month stays first", date(2025, time.June, 1), date(2025, time.July, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := schedule.NextDueDate(tt.current, domain.FrequencyMonthly)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestNextDueDate_Yearly(t *testing.T) {
	next, err := schedule.NextDueDate(date(2025, time.May, 20), domain.FrequencyYearly)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.May, 20), next)

	// Feb 29 has no counterpart in a non-leap year.
	next, err = schedule.NextDueDate(date(2024, time.February, 29), domain.FrequencyYearly)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 28), next)
}

func TestNextDueDate_UnknownFrequency(t *testing.T) {
	_, err := schedule.NextDueDate(date(2025, time.May, 20), domain.PaymentFrequency("daily"))
	assert.Error(t, err)
}

func TestNextDueDate_NeverRegresses(t *testing.T) {
	current := date(2025, time.January, 31)
	for _, freq := range []domain.PaymentFrequency{domain.FrequencyWeekly, domain.FrequencyMonthly, domain.FrequencyYearly} {
		next, err := schedule.NextDueDate(current, freq)
		require.NoError(t, err)
		assert.True(t, next.After(current), "frequency %s must advance forward", freq)
	}
}

func TestNextDueDate_RepeatedMonthlyAdvancement(t *testing.T) {
	// Jan 31 -> Feb 28 -> Mar 28: once clamped, the clamped day carries on.
	current := date(2025, time.January, 31)
	expected := []time.Time{
		date(2025, time.February, 28),
		date(2025, time.March, 28),
		date(2025, time.April, 28),
	}
	for _, want := range expected {
		next, err := schedule.NextDueDate(current, domain.FrequencyMonthly)
		require.NoError(t, err)
		assert.Equal(t, want, next)
		current = next
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, schedule.DaysUntil(now, date(2025, time.June, 10)))
	assert.Equal(t, 3, schedule.DaysUntil(now, date(2025, time.June, 13)))
	assert.Equal(t, -1, schedule.DaysUntil(now, date(2025, time.June, 9)))
	// Time of day must not affect the whole-day difference.
	assert.Equal(t, 1, schedule.DaysUntil(now, time.Date(2025, time.June, 11, 1, 0, 0, 0, time.UTC)))
}
