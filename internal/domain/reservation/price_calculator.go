package reservation

import "time"

// Nights counts calendar days between the date parts of rng, never fewer
// than one so same-day or inverted picks cannot price at zero or below.
func Nights(rng DateInterval) int {
	n := int(civilDay(rng.To).Sub(civilDay(rng.From)) / (24 * time.Hour))
	if n < 1 {
		return 1
	}
	return n
}

// Total scales linearly with guests as well as nights.
func Total(nightly Money, nights, guests int) Money {
	return nightly.Times(nights).Times(guests)
}

type Quote struct {
	Nights  int
	Guests  int
	Nightly Money
	Total   Money
}

func NewQuote(nightly Money, rng DateInterval, guests int) Quote {
	nights := Nights(rng)
	return Quote{
		Nights:  nights,
		Guests:  guests,
		Nightly: nightly,
		Total:   Total(nightly, nights, guests),
	}
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
