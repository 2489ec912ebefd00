// internal/event/event.go
package event

// EventType names one kind of outcome produced by a simulation tick.
type EventType string

// Event is one outcome of a tick. The collision pass produces them, the
// game applies them and only then hands them to listeners.
type Event struct {
	Type EventType
	Data interface{} // EntityRef, Damage, Position, CueKind, BodyID или int
}

// Listener reacts to events after the game has applied them. Listeners
// observe, they never mutate the arena.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans applied events out to listeners by type. Each Game owns
// one; the audio player is the usual subscriber.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds listener for eventType. Listeners are called in
// subscription order.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe снимает первую подписку listener на eventType
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers one event synchronously.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// DispatchAll delivers a tick's batch in the order the collision pass
// produced it.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
