package engine

// Phase is the lifecycle state of an animation run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	// PhaseComplete is idle with the completion flag set; it gates the
	// end-of-run panel and, like idle, allows a fresh Start.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
