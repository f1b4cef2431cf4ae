package reservation

import "time"

const (
	DefaultCheckInHour      = 15
	DefaultCheckOutHour     = 11
	DefaultMaxLookaheadDays = 365
)

// AvailabilityPolicy fixes the standard check-in/check-out times and how far
// ahead the day-by-day probe may look before giving up. Calendar days are
// taken in Location; nil keeps each instant's own location.
type AvailabilityPolicy struct {
	CheckInHour      int
	CheckOutHour     int
	MaxLookaheadDays int
	Location         *time.Location
}

func DefaultAvailabilityPolicy() AvailabilityPolicy {
	return AvailabilityPolicy{
		CheckInHour:      DefaultCheckInHour,
		CheckOutHour:     DefaultCheckOutHour,
		MaxLookaheadDays: DefaultMaxLookaheadDays,
	}
}

// Window returns the stay starting on day's date at the check-in hour and
// ending nights days later at the check-out hour, in day's location.
func (p AvailabilityPolicy) Window(day time.Time, nights int) DateInterval {
	if nights < 1 {
		nights = 1
	}
	y, m, d := day.Date()
	loc := day.Location()
	return DateInterval{
		From: time.Date(y, m, d, p.CheckInHour, 0, 0, 0, loc),
		To:   time.Date(y, m, d+nights, p.CheckOutHour, 0, 0, 0, loc),
	}
}

func (p AvailabilityPolicy) local(t time.Time) time.Time {
	if p.Location == nil {
		return t
	}
	return t.In(p.Location)
}

// FindNextAvailable returns the first one-night window at or after now's
// date that does not intersect the conflict set. The second result is false
// when nothing is free within the lookahead bound; that is a normal
// "no availability" outcome, not an error.
func FindNextAvailable(set ConflictSet, now time.Time, policy AvailabilityPolicy) (DateInterval, bool) {
	return probe(set, DateOnly(policy.local(now)), 1, policy)
}

// AdjustRange normalizes a user-picked range to standard check-in/check-out
// instants and, if it is blocked, walks the check-in forward one day at a
// time until a window of the same night count is free.
func AdjustRange(set ConflictSet, requested DateInterval, policy AvailabilityPolicy) (DateInterval, bool) {
	requested = NewDateInterval(policy.local(requested.From), policy.local(requested.To))
	return probe(set, DateOnly(requested.From), Nights(requested), policy)
}

func probe(set ConflictSet, start time.Time, nights int, policy AvailabilityPolicy) (DateInterval, bool) {
	candidate := start
	for i := 0; i < policy.MaxLookaheadDays; i++ {
		window := policy.Window(candidate, nights)
		if !set.RangeBlocked(window) {
			return window, true
		}
		candidate = candidate.AddDate(0, 0, 1)
	}
	return DateInterval{}, false
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
