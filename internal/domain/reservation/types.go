package reservation

type Status string

const (
	StatusIdle        Status = "idle"
	StatusSummaryOpen Status = "summary_open"
	StatusSubmitting  Status = "submitting"
	StatusConfirmed   Status = "confirmed"
	StatusFailed      Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// IsEditable reports whether dates and guests may be changed in this state.
func (s Status) IsEditable() bool {
	switch s {
	case StatusIdle, StatusSummaryOpen, StatusFailed:
		return true
	default:
		return false
	}
}

type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

func (m Mode) String() string {
	return string(m)
}
