package domain

import (
	"math"
	"time"
)

// DateLayout is the wire/date layout used by every date string in the system.
const DateLayout = "2006-01-02"

// CurrentSystemDate is the fixed simulated "today" the whole demo runs
// against. It is not the wall clock.
const CurrentSystemDate = "2026-01-15"

// HistoricalYear is the fixed year the bulk archived population is dated in.
const HistoricalYear = 2025

// Clock returns the simulated system date at UTC midnight.
func Clock() time.Time {
	t, _ := time.Parse(DateLayout, CurrentSystemDate)
	return t
}

// DaysUntil computes the calendar-day distance from clock to the given date,
// rounded up. Negative for past dates. Both sides are parsed as UTC midnight,
// so the division is exact; the ceil is kept for parity with the original
// millisecond subtraction, whose rounding near midnight depended on the local
// timezone.
func DaysUntil(date string, clock time.Time) (int, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(t.Sub(clock).Hours() / 24)), nil
}
