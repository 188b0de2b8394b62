package poppassd

// State is the position of a Client in the session state machine:
//
//	Idle -> Connected -> Authenticated -> Done
//
// Error is reachable from every connected state on a transport failure.
// Closed is terminal and is entered by Disconnect.
type State int

const (
	StateIdle State = iota
	StateConnected
	StateAuthenticated
	StateDone
	StateError
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnected:
		return "connected"
	case StateAuthenticated:
		return "authenticated"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
