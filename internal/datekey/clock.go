package datekey

import "time"

// Clock supplies the current instant. Callers inject it so that "today"
// is an explicit input rather than a read of the process clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Today returns the key for the clock's current instant in loc.
func Today(clock Clock, loc *time.Location) DateKey {
	if clock == nil {
		clock = SystemClock{}
	}
	return NormalizeIn(clock.Now(), loc)
}
