package claim

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether a claim in this status may never transition
// again.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFailed:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }
