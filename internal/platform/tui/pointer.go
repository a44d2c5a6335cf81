package tui

// termSurface maps terminal mouse coordinates into the cell buffer.
// The terminal reports cell positions directly, so the mapping is an
// identity with a unit scale.
type termSurface struct {
	width, height int
}

func (s *termSurface) ToLocal(clientX, clientY float64) (x, y float64) {
	return clientX, clientY
}

func (s *termSurface) Scale() (sx, sy float64) {
	return 1, 1
}

// cellViewport maps cell coordinates to world coordinates. Demos simulate
// in cell units, so this is also an identity; it exists so a demo with a
// scrolling camera can swap in an offset viewport.
type cellViewport struct{}

func (cellViewport) ToWorld(screenX, screenY float64) (x, y float64) {
	return screenX, screenY
}
