package access

import "fmt"

// State is the lifecycle position of a single access.
type State int

const (
	StateUnopened State = iota
	StateOpening
	StateOpen
	StateClosed
	StateOpenFailed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateOpenFailed:
		return "open-failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
