package domain

// Stage position of a run in the program state machine.
type Stage int

const (
	StageStart Stage = iota
	StageConnected
	StageValidated
	StagePriced
	StageOrderSubmitted
	StageRejected
	StageAuthFailed
)

// String returns the string representation of the stage
func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageConnected:
		return "connected"
	case StageValidated:
		return "validated"
	case StagePriced:
		return "priced"
	case StageOrderSubmitted:
		return "order_submitted"
	case StageRejected:
		return "rejected"
	case StageAuthFailed:
		return "auth_failed"
	default:
		return "unknown"
	}
}
