package errs

// Sentinel markers shared by the usecase and handler layers
var (
	// Venue errors
	ErrVenueNotFound   = New("venue not found")
	ErrBookingNotFound = New("booking not found")

	// Draft errors
	ErrDraftNotFound    = New("draft not found")
	ErrValidation       = New("validation failed")
	ErrDraftConflict    = New("draft state conflict")
	ErrInvalidDateRange = New("invalid date range")

	// Operation errors
	ErrUpstreamUnavailable = New("upstream unavailable")
)
