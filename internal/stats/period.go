package stats

import (
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

// Period is an inclusive time range.
type Period = repo.DateRange

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ThisMonth runs from the first instant of ref's month to ref.
func ThisMonth(ref time.Time) Period {
	return Period{Start: monthStart(ref), End: ref}
}

// PreviousMonth covers the whole calendar month before ref's month.
func PreviousMonth(ref time.Time) Period {
	start := monthStart(ref)
	return Period{Start: start.AddDate(0, -1, 0), End: start.Add(-time.Nanosecond)}
}

// Window is the range a length-month series over ref accepts: from the first
// day of the month length-1 months before ref, up to ref itself.
func Window(ref time.Time, length int) Period {
	return Period{Start: monthStart(ref).AddDate(0, -(length - 1), 0), End: ref}
}
