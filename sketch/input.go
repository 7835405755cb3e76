package sketch

// PointerKind identifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in surface-local pixels.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Pointer is the input singleton: the drawing flag and the events received
// since the last frame, in arrival order.
type Pointer struct {
	Drawing bool
	pending []PointerEvent
}

// Push queues an event for the next frame.
func (p *Pointer) Push(ev PointerEvent) {
	p.pending = append(p.pending, ev)
}

// Pending returns the number of queued events.
func (p *Pointer) Pending() int {
	return len(p.pending)
}

// drain returns the queued events and empties the queue.
func (p *Pointer) drain() []PointerEvent {
	events := p.pending
	p.pending = nil
	return events
}

// PointerTracker turns polled pointer samples into the event stream a
// browser would dispatch. Hosts that only expose per-tick cursor position
// and button state feed it one sample per tick.
type PointerTracker struct {
	x, y    float64
	pressed bool
	inside  bool
	primed  bool
}

// Sample records the current pointer state and returns the events implied
// by the change since the previous sample.
func (t *PointerTracker) Sample(x, y float64, pressed, inside bool) []PointerEvent {
	var events []PointerEvent
	moved := t.primed && (x != t.x || y != t.y)

	switch {
	case inside && pressed && !t.pressed:
		events = append(events, PointerEvent{Kind: PointerDown, X: x, Y: y})
	case inside && moved:
		events = append(events, PointerEvent{Kind: PointerMove, X: x, Y: y})
	}

	if t.pressed && !pressed {
		events = append(events, PointerEvent{Kind: PointerUp, X: x, Y: y})
	}
	if t.inside && !inside {
		events = append(events, PointerEvent{Kind: PointerLeave, X: x, Y: y})
	}

	t.x, t.y = x, y
	t.pressed = pressed
	t.inside = inside
	t.primed = true
	return events
}
