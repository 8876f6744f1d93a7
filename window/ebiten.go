//go:build ebiten && !sdl2

package window

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/aqcube/constant"
	"github.com/ushitora-anqou/aqcube/cube"
)

func EbitenInitialize() {
	ebiten.SetWindowSize(constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constant.TARGET_FPS)
}

// EbitenWindow displays frames under ebiten's inverted control flow: the
// game's Update drives one controller step, Draw paints the latest presented
// frame as one logical pixel per character cell, and Layout derives the
// grid from the outside window size. Frame pacing comes from SetTPS, not
// from the controller's synchronizer.
type EbitenWindow struct {
	mtxFrame      sync.Mutex
	frame         *cube.Frame
	width, height int
}

func NewEbitenWindow() *EbitenWindow {
	return &EbitenWindow{}
}

// Layout converts the outside size to character cells and doubles as the
// ebiten layout callback: the logical screen is exactly one pixel per cell,
// so the renderer stretches each cell to CELL_PX_WIDTH x CELL_PX_HEIGHT.
func (wind *EbitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth / constant.CELL_PX_WIDTH
	h := outsideHeight / constant.CELL_PX_HEIGHT
	if w < constant.MIN_GRID_WIDTH {
		w = constant.MIN_GRID_WIDTH
	}
	if h < constant.MIN_GRID_HEIGHT {
		h = constant.MIN_GRID_HEIGHT
	}
	wind.width, wind.height = w, h
	return w, h
}

func (wind *EbitenWindow) Size() (int, int) {
	return wind.width, wind.height
}

func (wind *EbitenWindow) HandleEvents() (bool, error) {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return false, nil
	}
	return true, nil
}

func (wind *EbitenWindow) Present(frame *cube.Frame, stats Stats) error {
	wind.mtxFrame.Lock()
	wind.frame = frame
	wind.mtxFrame.Unlock()

	ebiten.SetWindowTitle(fmt.Sprintf(
		"%s  %dx%d  scale=%d  frame=%d",
		constant.WINDOW_TITLE, stats.Width, stats.Height, stats.Scale, stats.Frame,
	))

	return nil
}

// Draw paints the most recent frame. A frame rendered just before a resize
// may not match the current layout; it is dropped and the next one wins.
func (wind *EbitenWindow) Draw(screen *ebiten.Image) {
	wind.mtxFrame.Lock()
	frame := wind.frame
	wind.mtxFrame.Unlock()

	bounds := screen.Bounds()
	if frame == nil || frame.Width != bounds.Dx() || frame.Height != bounds.Dy() {
		return
	}

	pixels := make([]uint8, 4*frame.Width*frame.Height)
	for row := 0; row < frame.Height; row++ {
		for col := 0; col < frame.Width; col++ {
			off := row*frame.Width + col
			level := glyphLevel(frame.At(col, row))
			pixels[off*4+0] = level // r
			pixels[off*4+1] = level // g
			pixels[off*4+2] = level // b
			pixels[off*4+3] = 0xff  // a
		}
	}
	screen.WritePixels(pixels)
}

func (wind *EbitenWindow) Finalize() {}

func glyphLevel(ch rune) uint8 {
	switch ch {
	case cube.GLYPH_FRONT_EDGE, cube.GLYPH_FRONT_VERTEX:
		return 0xff
	case cube.GLYPH_LINK_EDGE:
		return 0xaa
	case cube.GLYPH_BACK_VERTEX:
		return 0x77
	case cube.GLYPH_BACK_EDGE:
		return 0x44
	default: // blank
		return 0x00
	}
}
