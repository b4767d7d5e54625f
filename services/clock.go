package services

import "time"

// Clock supplies the current date for status derivation, default report
// periods and checkout stamping. It is injected so computations stay
// deterministic under test.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type realClock struct {
	loc *time.Location
}

// NewClock builds a Clock in the given IANA time zone, falling back to UTC
// when the zone cannot be loaded.
func NewClock(tzName string) Clock {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}
	return &realClock{loc: loc}
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *realClock) Today() time.Time {
	return Midnight(c.Now())
}

// Midnight normalizes t to a date-only value at UTC midnight, the canonical
// form for every stored and compared date.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
