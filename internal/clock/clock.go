// Package clock provides the wall-clock capability handed to the generator
// and the aggregator, so tests can pin "now".
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// YearLength is the average Gregorian year, absorbing leap-year variance.
const YearLength = time.Duration(365.25 * 24 * float64(time.Hour))

// Age returns the elapsed time between birth and now in fractional years,
// at millisecond resolution. It works on Unix milliseconds rather than
// time.Duration, which saturates at about 292 years.
func Age(birth, now time.Time) float64 {
	return float64(now.UnixMilli()-birth.UnixMilli()) / float64(YearLength.Milliseconds())
}
