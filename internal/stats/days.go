package stats

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// DaysRemaining counts the days from now until end. Future end dates round
// up, so anything up to 24h away is 1 day. Past end dates round down, so an
// end date even a minute ago is negative. 0 means end is exactly now.
func DaysRemaining(end, now time.Time) int {
	d := float64(end.Sub(now)) / float64(day)
	if d < 0 {
		return int(math.Floor(d))
	}
	return int(math.Ceil(d))
}

// DaysRemainingLabel renders DaysRemaining for display.
func DaysRemainingLabel(end, now time.Time) string {
	switch n := DaysRemaining(end, now); {
	case n < 0:
		return "expired"
	case n == 0:
		return "expires today"
	case n == 1:
		return "1 day remaining"
	default:
		return fmt.Sprintf("%d days remaining", n)
	}
}
