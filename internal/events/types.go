package events

import (
	"github.com/KirkDiggler/gamebus/internal/entities"
)

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	GetEntity() *entities.Entity
}

// Cancelable is implemented only by event payloads that declare the
// cancelable capability. Payloads that do not embed CancelableEvent
// have no SetCanceled method, so canceling them does not compile.
type Cancelable interface {
	Event
	IsCanceled() bool
	SetCanceled(canceled bool)
}

// Result is the tri-state outcome a handler may assign to a resultable
// event. ResultDefault leaves the outcome to the poster.
type Result int

const (
	ResultDefault Result = iota
	ResultAllow
	ResultDeny
)

func (r Result) String() string {
	switch r {
	case ResultAllow:
		return "allow"
	case ResultDeny:
		return "deny"
	default:
		return "default"
	}
}

// Resultable is implemented by event payloads whose outcome handlers
// may decide without canceling the whole occurrence
type Resultable interface {
	Event
	GetResult() Result
	SetResult(result Result)
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type   EventType
	Entity *entities.Entity
}

func (e *BaseEvent) GetType() EventType          { return e.Type }
func (e *BaseEvent) GetEntity() *entities.Entity { return e.Entity }

// CancelableEvent adds the canceled flag. Only payload variants that
// embed it can be canceled; later subscribers with ReceiveCanceled may
// clear the flag again.
type CancelableEvent struct {
	BaseEvent
	Canceled bool
}

func (e *CancelableEvent) IsCanceled() bool          { return e.Canceled }
func (e *CancelableEvent) SetCanceled(canceled bool) { e.Canceled = canceled }

// EventResult adds the tri-state result field for resultable payloads
type EventResult struct {
	Result Result
}

func (e *EventResult) GetResult() Result       { return e.Result }
func (e *EventResult) SetResult(result Result) { e.Result = result }
