package core

// Key is a logical key, abstracted from whatever device produced it.
type Key int

const (
	KeyNone   Key = iota
	KeyLeft       // Left arrow
	KeyRight      // Right arrow
	KeyA          // Alternate left
	KeyD          // Alternate right
	KeySpace      // Shoot
	KeyEscape     // Pause / unpause
	KeyEnter      // Start from the welcome screen
	KeyR          // Restart after death
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyR:
		return "R"
	default:
		return "None"
	}
}

// Movement and action key groups.
var (
	LeftKeys  = []Key{KeyLeft, KeyA}
	RightKeys = []Key{KeyRight, KeyD}
)

// EventType identifies the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventQuit
	EventSpawnShips   // Enemy spawn timer fired
	EventSpawnPowerUp // Power-up timer fired
	EventDeath        // Player health reached zero
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventQuit:
		return "Quit"
	case EventSpawnShips:
		return "SpawnShips"
	case EventSpawnPowerUp:
		return "SpawnPowerUp"
	case EventDeath:
		return "Death"
	default:
		return "None"
	}
}

// Event is a discrete occurrence consumed once per tick: key edges,
// timer expirations and game signals.
type Event struct {
	Type EventType
	Key  Key // Set for key events only
}

// KeyDown returns a key press event.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyUp returns a key release event.
func KeyUp(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// IsKeyDown reports whether the event is a press of k.
func (e Event) IsKeyDown(k Key) bool {
	return e.Type == EventKeyDown && e.Key == k
}

// EventQueue is a FIFO of pending events.
// Events posted while draining are delivered on the next drain.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Post appends an event.
func (q *EventQueue) Post(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain removes and returns all pending events.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// KeyState is the boolean pressed state per logical key.
type KeyState map[Key]bool

// NewKeyState creates an empty key-state table.
func NewKeyState() KeyState {
	return make(KeyState)
}

// Apply updates the table from a key event. Non-key events are ignored.
func (ks KeyState) Apply(e Event) {
	switch e.Type {
	case EventKeyDown:
		ks[e.Key] = true
	case EventKeyUp:
		ks[e.Key] = false
	}
}

// Pressed reports whether k is held.
func (ks KeyState) Pressed(k Key) bool {
	return ks[k]
}

// AnyPressed reports whether any of the keys is held.
func (ks KeyState) AnyPressed(keys []Key) bool {
	for _, k := range keys {
		if ks[k] {
			return true
		}
	}
	return false
}

// Reset releases every key.
func (ks KeyState) Reset() {
	for k := range ks {
		delete(ks, k)
	}
}
