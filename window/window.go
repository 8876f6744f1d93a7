package window

import "github.com/ushitora-anqou/aqcube/cube"

// Stats is per-frame information a backend may surface as chrome (window
// title, status text). Backends are free to ignore it.
type Stats struct {
	Frame                  uint64
	Scale                  int
	Width, Height          int
	AngleX, AngleY, AngleZ float64
}

// Window is the display collaborator: a character-grid viewport plus a sink
// that shows one frame at a time. Size reports the current viewport in
// character cells and returns (0, 0) until the backend knows its dimensions.
// HandleEvents polls pending input/close events without blocking and returns
// false once the user asked to quit. Present hands over a fully rasterized
// frame; delivery is latest-frame-wins, so an undelivered previous frame may
// be silently superseded.
type Window interface {
	Size() (int, int)
	HandleEvents() (bool, error)
	Present(frame *cube.Frame, stats Stats) error
	Finalize()
}
