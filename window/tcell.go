//go:build !sdl2 && !ebiten

package window

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/ushitora-anqou/aqcube/constant"
	"github.com/ushitora-anqou/aqcube/cube"
)

// TcellWindow displays frames on a terminal. The terminal is already a
// monospace character grid, so cells map 1:1 onto screen positions. Resize
// and key events arrive on a pump goroutine; the current size crosses over
// to the render loop through two atomics.
type TcellWindow struct {
	screen        tcell.Screen
	events        chan tcell.Event
	width, height int32
}

func NewTcellWindow() (*TcellWindow, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetTitle(constant.WINDOW_TITLE)
	screen.Clear()

	wind := &TcellWindow{
		screen: screen,
		events: make(chan tcell.Event, 100),
	}
	wind.storeSize(screen.Size())

	// Event pump. PollEvent returns nil once the screen is finalized.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case wind.events <- ev:
			default:
			}
		}
	}()

	return wind, nil
}

func (wind *TcellWindow) storeSize(w, h int) {
	atomic.StoreInt32(&wind.width, int32(w))
	atomic.StoreInt32(&wind.height, int32(h))
}

func (wind *TcellWindow) Size() (int, int) {
	w := int(atomic.LoadInt32(&wind.width))
	h := int(atomic.LoadInt32(&wind.height))
	if w < constant.MIN_GRID_WIDTH {
		w = constant.MIN_GRID_WIDTH
	}
	if h < constant.MIN_GRID_HEIGHT {
		h = constant.MIN_GRID_HEIGHT
	}
	return w, h
}

func (wind *TcellWindow) HandleEvents() (bool, error) {
	for {
		select {
		case ev := <-wind.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return false, nil
				}
			case *tcell.EventResize:
				wind.storeSize(ev.Size())
				wind.screen.Sync()
			}
		default:
			return true, nil
		}
	}
}

func (wind *TcellWindow) Present(frame *cube.Frame, stats Stats) error {
	style := tcell.StyleDefault
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			wind.screen.SetContent(x, y, frame.At(x, y), nil, style)
		}
	}
	wind.screen.Show()
	return nil
}

func (wind *TcellWindow) Finalize() {
	wind.screen.Fini()
}
