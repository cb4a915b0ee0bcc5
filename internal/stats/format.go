package stats

import (
	"fmt"
	"time"
)

var monthsES = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// FormatDate renders t in UTC the way es-ES medium dates read, e.g.
// "2 ene 2024".
func FormatDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d %s %d", t.Day(), monthsES[t.Month()-1], t.Year())
}

// FormatShortDate renders t in UTC as day/month/year without padding, e.g.
// "2/1/2024".
func FormatShortDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
