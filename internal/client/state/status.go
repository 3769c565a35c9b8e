package state

// Status is the single operation status a state manager holds: a manager is
// never in more than one of these at a time.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
