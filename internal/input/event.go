package input

// Host event type tags. Native pointer events arrive pre-normalized; mouse
// and touch events are synthesized into the same pointer shape; wheel
// events only carry scroll deltas.
const (
	EventPointerDown   = "pointerdown"
	EventPointerUp     = "pointerup"
	EventPointerMove   = "pointermove"
	EventPointerCancel = "pointercancel"
	EventMouseDown     = "mousedown"
	EventMouseUp       = "mouseup"
	EventMouseMove     = "mousemove"
	EventTouchStart    = "touchstart"
	EventTouchEnd      = "touchend"
	EventTouchMove     = "touchmove"
	EventWheel         = "wheel"
)

// Event is the raw host input record consumed by Pointer.SetEvent.
// Optional fields the host may omit are pointers; zero-valued size and
// radius fields mean "not provided".
type Event struct {
	Type   string
	Button int

	// IsPrimary is nil when the host event lacks the field; the pointer
	// then defaults to primary.
	IsPrimary *bool

	// PointerID is nil when the host event lacks the field. Zero is a
	// valid id and is preserved as-is.
	PointerID *int

	// Contact geometry of native pointer events.
	Width, Height float64

	// Contact radii of touch events; the effective size is the doubled
	// radius.
	RadiusX, RadiusY float64

	// Wheel event payload.
	DeltaX      float64
	WheelDelta  float64
	WheelDeltaX float64
}

// isPointerEvent reports whether the event is a native pointer event
// rather than one synthesized from mouse or touch input.
func (e *Event) isPointerEvent() bool {
	switch e.Type {
	case EventPointerDown, EventPointerUp, EventPointerMove, EventPointerCancel:
		return true
	}
	return false
}
