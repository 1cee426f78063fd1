package timeparse

import "time"

// Clock is a wall-clock time of day with no date attached.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// On anchors the clock time onto the calendar date of t (local time).
func (c Clock) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// Until returns the duration from c to end on the same day, minute-precise.
func (c Clock) Until(end Clock) time.Duration {
	return time.Duration(end.Hour-c.Hour)*time.Hour + time.Duration(end.Minute-c.Minute)*time.Minute
}

// Confidence weights contributed by each kind of successful match.
// They are additive inputs to the extractor's overall confidence score.
const (
	WeightDate         = 25
	WeightUpdateRange  = 40
	WeightUpdateSingle = 30
	WeightRange        = 30
	WeightSingle       = 20
)
