//go:build sdl2

package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/aqcube/constant"
	"github.com/ushitora-anqou/aqcube/cube"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

// SDLWindow displays frames in a resizable desktop window. Each character
// cell becomes one texel of a streaming texture, shaded by glyph, which the
// renderer scales to the window. The texture is recreated whenever the
// derived grid size changes.
type SDLWindow struct {
	window     *sdl.Window
	renderer   *sdl.Renderer
	texture    *sdl.Texture
	texW, texH int
}

func NewSDLWindow() (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		constant.WINDOW_WIDTH,
		constant.WINDOW_HEIGHT,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}

	return &SDLWindow{
		window:   window,
		renderer: renderer,
	}, nil
}

// Size re-derives the character grid from the current window pixel size on
// every call, so a resize is picked up by the next render iteration.
func (wind *SDLWindow) Size() (int, int) {
	pw, ph := wind.window.GetSize()
	w := int(pw) / constant.CELL_PX_WIDTH
	h := int(ph) / constant.CELL_PX_HEIGHT
	if w < constant.MIN_GRID_WIDTH {
		w = constant.MIN_GRID_WIDTH
	}
	if h < constant.MIN_GRID_HEIGHT {
		h = constant.MIN_GRID_HEIGHT
	}
	return w, h
}

func (wind *SDLWindow) HandleEvents() (bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event := event.(type) {
		case *sdl.QuitEvent:
			return false, nil
		case *sdl.KeyboardEvent:
			if event.Type == sdl.KEYDOWN && event.Keysym.Sym == sdl.K_ESCAPE {
				return false, nil
			}
		}
	}
	return true, nil
}

func (wind *SDLWindow) ensureTexture(w, h int) error {
	if wind.texture != nil && wind.texW == w && wind.texH == h {
		return nil
	}
	if wind.texture != nil {
		wind.texture.Destroy()
		wind.texture = nil
	}
	texture, err := wind.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(w),
		int32(h),
	)
	if err != nil {
		return err
	}
	wind.texture = texture
	wind.texW, wind.texH = w, h
	return nil
}

func (wind *SDLWindow) Present(frame *cube.Frame, stats Stats) error {
	if err := wind.ensureTexture(frame.Width, frame.Height); err != nil {
		return err
	}

	// Update the texture
	pixels, _, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	for row := 0; row < frame.Height; row++ {
		for col := 0; col < frame.Width; col++ {
			off := row*frame.Width + col
			level := glyphLevel(frame.At(col, row))
			pixels[off*4+0] = level // b
			pixels[off*4+1] = level // g
			pixels[off*4+2] = level // r
			pixels[off*4+3] = 0xff  // a
		}
	}
	wind.texture.Unlock()

	// Present the scene
	wind.renderer.Clear()
	wind.renderer.Copy(wind.texture, nil, nil)
	wind.renderer.Present()

	wind.window.SetTitle(fmt.Sprintf(
		"%s  %dx%d  scale=%d  frame=%d",
		constant.WINDOW_TITLE, stats.Width, stats.Height, stats.Scale, stats.Frame,
	))

	return nil
}

func (wind *SDLWindow) Finalize() {
	if wind.texture != nil {
		wind.texture.Destroy()
	}
	wind.renderer.Destroy()
	wind.window.Destroy()
	sdl.Quit()
}

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
