package reservation

import (
	"time"

	"venue-booking/internal/domain/venue"
)

// ConflictSet is the collection of intervals a new or edited reservation
// must not intersect. It is never mutated after construction; rebuild it
// whenever the venue's bookings or the excluded id change.
type ConflictSet struct {
	intervals []DateInterval
}

// BuildConflictSet maps bookings to intervals, skipping the booking whose id
// equals excludeID so an edited booking does not conflict with itself.
func BuildConflictSet(bookings []venue.Booking, excludeID *string) ConflictSet {
	intervals := make([]DateInterval, 0, len(bookings))
	for _, b := range bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		intervals = append(intervals, NewDateInterval(b.DateFrom, b.DateTo))
	}
	return ConflictSet{intervals: intervals}
}

func NewConflictSet(intervals ...DateInterval) ConflictSet {
	owned := make([]DateInterval, len(intervals))
	copy(owned, intervals)
	return ConflictSet{intervals: owned}
}

// IsBlocked reports whether point falls within any interval of the set.
func (s ConflictSet) IsBlocked(point time.Time) bool {
	for _, iv := range s.intervals {
		if Overlaps(iv, point) {
			return true
		}
	}
	return false
}

// RangeBlocked reports whether either endpoint of rng is blocked or any
// interval in the set intersects rng.
func (s ConflictSet) RangeBlocked(rng DateInterval) bool {
	if s.IsBlocked(rng.From) || s.IsBlocked(rng.To) {
		return true
	}
	for _, iv := range s.intervals {
		if IntervalsOverlap(iv, rng) {
			return true
		}
	}
	return false
}

func (s ConflictSet) Intervals() []DateInterval {
	out := make([]DateInterval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

func (s ConflictSet) Len() int {
	return len(s.intervals)
}
