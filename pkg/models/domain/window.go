package domain

import "time"

// Timeframe selects how the reporting window of a request is derived.
type Timeframe string

const (
	TimeframeYear   Timeframe = "YEAR"
	TimeframeMonth  Timeframe = "MONTH"
	TimeframeCustom Timeframe = "CUSTOM"
)

// TimeWindow is a reporting window aligned to calendar month boundaries:
// Start is the first day of its month, End the last day of its month.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// MonthWindow returns the window covering the whole month containing t.
func MonthWindow(t time.Time) TimeWindow {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// YearWindow returns the window covering the whole given calendar year.
func YearWindow(year int) TimeWindow {
	return TimeWindow{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// AlignedWindow expands [from, to] to full months: the first day of from's
// month through the last day of to's month.
func AlignedWindow(from, to time.Time) TimeWindow {
	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	endStart := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	return TimeWindow{
		Start: start,
		End:   endStart.AddDate(0, 1, -1),
	}
}

// Prev returns the window of the calendar month before the window's start.
func (w TimeWindow) Prev() TimeWindow {
	return MonthWindow(w.Start.AddDate(0, -1, 0))
}

// Months splits the window into consecutive one-month windows in
// chronological order. A window within a single month yields one entry.
func (w TimeWindow) Months() []TimeWindow {
	var months []TimeWindow
	cur := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(w.End.Year(), w.End.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(last) {
		months = append(months, TimeWindow{Start: cur, End: cur.AddDate(0, 1, -1)})
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// Label is the 3-letter month label used by trend points, e.g. "Jan".
func (w TimeWindow) Label() string {
	return w.Start.Format("Jan")
}
