package reservation

import (
	"fmt"
	"math"
	"time"
)

// DateInterval is a closed range [From, To] occupied by one reservation,
// inclusive of its check-in and check-out instants.
type DateInterval struct {
	From time.Time
	To   time.Time
}

// NewDateInterval does not reject degenerate ranges: consumed booking data
// may contain them and every predicate below tolerates them.
func NewDateInterval(from, to time.Time) DateInterval {
	return DateInterval{From: from, To: to}
}

// Overlaps reports whether point lies within a, both ends inclusive.
func Overlaps(a DateInterval, point time.Time) bool {
	return !point.Before(a.From) && !point.After(a.To)
}

// IntervalsOverlap reports whether a and b share any instant.
func IntervalsOverlap(a, b DateInterval) bool {
	return !a.From.After(b.To) && !b.From.After(a.To)
}

func (d DateInterval) String() string {
	return fmt.Sprintf("[%s,%s]", d.From.Format(time.RFC3339), d.To.Format(time.RFC3339))
}

// Money holds an amount in minor units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromDecimal converts a major-unit amount such as 1250.5 into cents,
// rounding half away from zero.
func MoneyFromDecimal(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) String() string {
	sign := ""
	cents := m.cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
