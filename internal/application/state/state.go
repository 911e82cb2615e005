// Package state defines the scene lifecycle state machine.
package state

// State is the lifecycle position of a scene instance. Transitions run
// strictly forward: Unloaded → Preloading → Preloaded → Created →
// Destroyed.
type State int

const (
	StateUnloaded State = iota
	StatePreloading
	StatePreloaded
	StateCreated
	StateDestroyed
)

// String returns the string representation of the lifecycle state
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "Unloaded"
	case StatePreloading:
		return "Preloading"
	case StatePreloaded:
		return "Preloaded"
	case StateCreated:
		return "Created"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}
