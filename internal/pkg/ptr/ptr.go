package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Coalesce returns the value pointed to by p if it's not nil, otherwise returns fallback
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

// NonEmpty returns nil for the empty string so optional JSON fields are omitted.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
