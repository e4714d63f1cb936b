package leave

import "time"

const hoursPerDay = 24

// Days returns the inclusive number of days between two calendar dates.
// It returns 0 when either date does not parse or end precedes start.
func Days(start, end string) int {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0
	}
	if to.Before(from) {
		return 0
	}
	// time.Parse yields UTC midnight, so every day is exactly 24h.
	return int(to.Sub(from).Hours()/hoursPerDay) + 1
}
