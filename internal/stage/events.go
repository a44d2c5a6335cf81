package stage

import "time"

// EventType names a stage lifecycle event.
type EventType string

const (
	EventStateChange EventType = "stage.statechange"
	EventStop        EventType = "stage.stop"
	EventPause       EventType = "stage.pause"
	EventResume      EventType = "stage.resume"
	EventRestart     EventType = "stage.restart"
)

// Event is published to subscribers on every lifecycle transition.
type Event struct {
	Type  EventType
	State State

	// Elapsed carries the stop/pause duration for restart and resume
	// events, zero otherwise.
	Elapsed time.Duration
}

// Subscribe registers a listener for lifecycle events. Listeners run
// synchronously on the game-logic goroutine, in registration order.
func (st *Stage) Subscribe(fn func(Event)) {
	st.listeners = append(st.listeners, fn)
}

func (st *Stage) publish(t EventType, elapsed time.Duration) {
	ev := Event{Type: t, State: st.current, Elapsed: elapsed}
	for _, fn := range st.listeners {
		fn(ev)
	}
}
