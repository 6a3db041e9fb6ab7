package lens

import (
	"github.com/akmonengine/lens/actor"
	"github.com/akmonengine/lens/camera"
)

const (
	VIEW_ENTER EventType = iota
	VIEW_STAY
	VIEW_EXIT
	ON_HIDE
	ON_SHOW
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Visibility events
type ViewEnterEvent struct {
	Actor     *actor.Actor
	Intercept camera.Intercept
}

func (e ViewEnterEvent) Type() EventType { return VIEW_ENTER }

type ViewStayEvent struct {
	Actor     *actor.Actor
	Intercept camera.Intercept
}

func (e ViewStayEvent) Type() EventType { return VIEW_STAY }

type ViewExitEvent struct {
	Actor *actor.Actor
}

func (e ViewExitEvent) Type() EventType { return VIEW_EXIT }

// Hide/Show events
type HideEvent struct {
	Actor *actor.Actor
}

func (e HideEvent) Type() EventType { return ON_HIDE }

type ShowEvent struct {
	Actor *actor.Actor
}

func (e ShowEvent) Type() EventType { return ON_SHOW }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Visible set tracking for Enter/Stay/Exit detection, in actor order
	previousVisible map[*actor.Actor]bool
	currentVisible  map[*actor.Actor]bool
	previousOrder   []*actor.Actor

	hiddenStates map[*actor.Actor]bool
}

func NewEvents() Events {
	return Events{
		listeners:       make(map[EventType][]EventListener),
		buffer:          make([]Event, 0, 256),
		previousVisible: make(map[*actor.Actor]bool),
		currentVisible:  make(map[*actor.Actor]bool),
		hiddenStates:    make(map[*actor.Actor]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		*e = NewEvents()
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// processVisibilityEvents compares the visible set with the previous pass
// to detect Enter/Stay/Exit
func (e *Events) processVisibilityEvents(visible []*actor.Actor) {
	for _, a := range visible {
		e.currentVisible[a] = true

		if e.previousVisible[a] {
			e.buffer = append(e.buffer, ViewStayEvent{Actor: a, Intercept: a.Intercept})
		} else {
			e.buffer = append(e.buffer, ViewEnterEvent{Actor: a, Intercept: a.Intercept})
		}
	}

	for _, a := range e.previousOrder {
		if !e.currentVisible[a] {
			e.buffer = append(e.buffer, ViewExitEvent{Actor: a})
		}
	}

	// Swap for next pass and clear current
	e.previousVisible, e.currentVisible = e.currentVisible, e.previousVisible
	clear(e.currentVisible)
	e.previousOrder = append(e.previousOrder[:0], visible...)
}

func (e *Events) processHideEvents(actors []*actor.Actor) {
	for _, a := range actors {
		trackedState, exists := e.hiddenStates[a]
		if !exists {
			e.hiddenStates[a] = a.IsHidden
			continue
		}

		if !trackedState && a.IsHidden {
			e.buffer = append(e.buffer, HideEvent{Actor: a})
			e.hiddenStates[a] = true
		} else if trackedState && !a.IsHidden {
			e.buffer = append(e.buffer, ShowEvent{Actor: a})
			e.hiddenStates[a] = false
		}
	}
}

// forget drops every trace of a removed actor, without emitting an exit
func (e *Events) forget(a *actor.Actor) {
	delete(e.hiddenStates, a)
	delete(e.previousVisible, a)

	n := 0
	for _, other := range e.previousOrder {
		if other != a {
			e.previousOrder[n] = other
			n++
		}
	}
	e.previousOrder = e.previousOrder[:n]
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
