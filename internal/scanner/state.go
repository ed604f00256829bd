package scanner

// State of a scanning session.
type State int

const (
	Idle State = iota
	Capturing
	Evaluating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Evaluating:
		return "evaluating"
	default:
		return "unknown"
	}
}

// Event drives a State change.
type Event int

const (
	EventStart Event = iota
	EventStop
	EventDetect
	EventDuplicate
	EventAccepted
	EventFailed
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventStop:
		return "stop"
	case EventDetect:
		return "detect"
	case EventDuplicate:
		return "duplicate"
	case EventAccepted:
		return "accepted"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Next returns the state reached from s on e. Events that are not valid in s
// leave it unchanged.
func Next(s State, e Event) State {
	switch s {
	case Idle:
		if e == EventStart {
			return Capturing
		}
	case Capturing:
		switch e {
		case EventStop:
			return Idle
		case EventDetect:
			return Evaluating
		}
	case Evaluating:
		switch e {
		case EventAccepted:
			return Capturing
		case EventDuplicate, EventFailed:
			return Idle
		}
	}
	return s
}

// Outcome of one detection.
type Outcome int

const (
	// OutcomeDropped: the engine was not capturing; the detection was ignored.
	OutcomeDropped Outcome = iota
	OutcomeDuplicate
	OutcomeAccepted
	// OutcomeFailed: the scan could not be persisted and was discarded.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDropped:
		return "dropped"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
