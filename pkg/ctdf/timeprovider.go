package ctdf

import "time"

// CurrentTimeProvider supplies "now" for countdown formatting. It never affects which
// departures are selected.
type CurrentTimeProvider interface {
	CurrentTime() time.Time
}

type CurrentTimeFunc func() time.Time

func (f CurrentTimeFunc) CurrentTime() time.Time {
	return f()
}
