package model

import "time"

const (
	// OpenEnded marks a date range with no end, e.g. a current position.
	OpenEnded = "Present"

	dateLayout = "2006-01"
)

// ChronologicalOrder reports whether end may follow start. It is advisory
// only: the client uses it to suppress an end-date keystroke that would
// invert a range, and it must never be used to reject stored data. Blank
// bounds and an open-ended end always pass.
func ChronologicalOrder(start, end string) bool {
	if start == "" || end == "" || end == OpenEnded {
		return true
	}
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return false
	}
	return !s.After(e)
}
