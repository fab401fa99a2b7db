package events

// Priority controls the order subscriptions see an event. Lower values
// run earlier; the zero value is PriorityNormal, so a Binding that does
// not set a priority dispatches in the middle of the chain.
type Priority int

const (
	PriorityHighest Priority = -200
	PriorityHigh    Priority = -100
	PriorityNormal  Priority = 0
	PriorityLow     Priority = 100
	PriorityLowest  Priority = 200
)

func (p Priority) String() string {
	switch p {
	case PriorityHighest:
		return "highest"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	case PriorityLowest:
		return "lowest"
	default:
		return "custom"
	}
}
