package schedule

import (
	"fmt"
	"time"

	"github.com/homevia/rent_ledger_app/internal/core/domain"
)

// NextDueDate advances a due date by exactly one period of the given
// frequency. Monthly and yearly advancement are calendar-aware: a day that
// does not exist in the target month (e.g. Jan 31 -> Feb) clamps to the last
// valid day of that month instead of rolling into the following month.
func NextDueDate(current time.Time, frequency domain.PaymentFrequency) (time.Time, error) {
	switch frequency {
	case domain.FrequencyWeekly:
		return current.AddDate(0, 0, 7), nil
	case domain.FrequencyMonthly:
		return addMonthClamped(current, 1), nil
	case domain.FrequencyYearly:
		return addMonthClamped(current, 12), nil
	default:
		return time.Time{}, fmt.Errorf("unknown payment frequency '%s'", frequency)
	}
}

// addMonthClamped adds months to t, clamping the day-of-month to the last
// valid day of the target month. time.AddDate is deliberately avoided here:
// it normalizes Jan 31 + 1 month to Mar 2/3.
func addMonthClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	targetFirst := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(targetFirst.Year(), targetFirst.Month()); d > last {
		d = last
	}
	h, min, sec := t.Clock()
	return time.Date(targetFirst.Year(), targetFirst.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysUntil returns the whole-day difference between now and the due date,
// comparing calendar dates rather than instants. Negative means overdue.
func DaysUntil(now, due time.Time) int {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDate.Sub(nowDate).Hours() / 24)
}
