package input

import "github.com/vovakirdan/tui-engine/internal/geom"

// Surface converts host client coordinates into local (render surface)
// coordinates and exposes the surface scale used to derive screen
// coordinates from local ones.
type Surface interface {
	ToLocal(clientX, clientY float64) (x, y float64)
	Scale() (sx, sy float64)
}

// Viewport converts screen (viewport-relative) coordinates into world
// (map-relative) coordinates.
type Viewport interface {
	ToWorld(screenX, screenY float64) (x, y float64)
}

// Pointer is one normalized input sample. It is a mutable scratch buffer:
// a single instance is re-initialized by every SetEvent call rather than
// allocated fresh per event.
//
// Aliasing hazard: all fields, including the raw Event reference, are only
// valid until the next SetEvent call. Consumers that need a sample beyond
// the current frame must copy out the fields they use.
type Pointer struct {
	// Event is the raw host event backing this sample.
	Event *Event

	Type      string
	Button    int
	IsPrimary bool

	// PointerID identifies the contact across events. Hosts that omit the
	// id get the default 1; an explicit 0 is a valid id and is kept.
	PointerID int

	// The same position projected through every engine coordinate space.
	ClientX, ClientY float64
	LocalX, LocalY   float64
	ScreenX, ScreenY float64
	WorldX, WorldY   float64

	// Scroll deltas, populated for wheel events only.
	DeltaX, DeltaY float64

	// Bounds is the device contact area: its position tracks the local
	// coordinates and its size the detected contact size (native pointer
	// size, doubled touch radius, or 1x1).
	Bounds geom.Rect

	// IsNormalized is false for native pointer events and true for
	// samples synthesized from mouse or touch input.
	IsNormalized bool

	surface  Surface
	viewport Viewport
}

// NewPointer creates a pointer bound to the given coordinate converters.
func NewPointer(surface Surface, viewport Viewport) *Pointer {
	return &Pointer{
		surface:  surface,
		viewport: viewport,
		Bounds:   geom.NewRect(0, 0, 1, 1),
	}
}

// SetEvent re-initializes the pointer from a raw host event. pointerID
// overrides the event's own id when non-nil (touch hosts report the id out
// of band); when both are absent the id defaults to 1, since 0 is a valid
// id that must not be confused with "not provided".
func (p *Pointer) SetEvent(ev *Event, clientX, clientY float64, pointerID *int) {
	p.Event = ev
	p.Type = ev.Type
	p.Button = ev.Button
	p.IsNormalized = !ev.isPointerEvent()

	p.ClientX = clientX
	p.ClientY = clientY
	p.LocalX, p.LocalY = p.surface.ToLocal(clientX, clientY)

	if ev.Type == EventWheel {
		p.DeltaX = ev.DeltaX
		p.DeltaY = 0
		// Legacy wheel payloads report scroll units; one unit is 40
		// wheelDelta ticks, inverted.
		if ev.WheelDelta != 0 {
			p.DeltaY = -1.0 / 40.0 * ev.WheelDelta
		}
		if ev.WheelDeltaX != 0 {
			p.DeltaX = -1.0 / 40.0 * ev.WheelDeltaX
		}
	} else {
		p.DeltaX = 0
		p.DeltaY = 0
	}

	id := pointerID
	if id == nil {
		id = ev.PointerID
	}
	if id != nil {
		p.PointerID = *id
	} else {
		p.PointerID = 1
	}

	if ev.IsPrimary != nil {
		p.IsPrimary = *ev.IsPrimary
	} else {
		p.IsPrimary = true
	}

	sx, sy := p.surface.Scale()
	p.ScreenX = p.LocalX / sx
	p.ScreenY = p.LocalY / sy
	p.WorldX, p.WorldY = p.viewport.ToWorld(p.ScreenX, p.ScreenY)

	w, h := contactSize(ev)
	p.Bounds = geom.NewRect(p.LocalX, p.LocalY, w, h)
}

// contactSize derives the pointer contact area: native pointer size when
// present, else the doubled touch radius, else 1x1.
func contactSize(ev *Event) (w, h float64) {
	if ev.Width > 0 || ev.Height > 0 {
		return ev.Width, ev.Height
	}
	if ev.RadiusX > 0 || ev.RadiusY > 0 {
		return ev.RadiusX * 2, ev.RadiusY * 2
	}
	return 1, 1
}
