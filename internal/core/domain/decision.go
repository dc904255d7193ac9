package domain

// Action is what the dispatcher does for a single request.
type Action int

const (
	// ActionServeCache returns the cached record.
	ActionServeCache Action = iota
	// ActionCompute runs the real docking engine.
	ActionCompute
	// ActionMock uses the mock score generator.
	ActionMock
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionServeCache:
		return "serve-cache"
	case ActionCompute:
		return "compute"
	case ActionMock:
		return "mock"
	default:
		return "unknown"
	}
}

// Decide picks the action for a request. A cache hit always wins.
func Decide(cacheHit, engineUsable bool) Action {
	switch {
	case cacheHit:
		return ActionServeCache
	case engineUsable:
		return ActionCompute
	default:
		return ActionMock
	}
}
