package main

import (
	"time"

	"github.com/ushitora-anqou/aqcube/constant"
	"github.com/ushitora-anqou/aqcube/cube"
	"github.com/ushitora-anqou/aqcube/util"
	"github.com/ushitora-anqou/aqcube/window"
)

// AQCube owns the render loop: it polls the display collaborator for events
// and viewport size, asks the cube for one rasterized frame per tick, hands
// the frame to the sink, and advances the orientation. The cube never
// advances while the viewport is unsized, so the animation resumes exactly
// where it paused.
type AQCube struct {
	cube    *cube.Cube
	wind    window.Window
	running *util.AtomicBool
	frame   uint64
}

func NewAQCube(wind window.Window) *AQCube {
	return &AQCube{
		cube:    cube.NewCube(constant.MIN_CUBE_SIZE * 2),
		wind:    wind,
		running: util.NewAtomicBool(true),
	}
}

// optimalScale fits the cube to the viewport: a third of the smaller grid
// dimension, clamped to [MIN_CUBE_SIZE, MAX_CUBE_SIZE].
func optimalScale(width, height int) int {
	avail := util.MinInt(width, height)
	return util.ClampInt(avail/constant.SIZE_DIVISOR, constant.MIN_CUBE_SIZE, constant.MAX_CUBE_SIZE)
}

// Step performs one render iteration: derive viewport size, refit the scale,
// rasterize, present, advance. Returns false without touching the cube when
// the viewport has no valid size yet.
func (a *AQCube) Step() (bool, error) {
	width, height := a.wind.Size()
	if width <= 0 || height <= 0 {
		return false, nil
	}

	a.cube.SetScale(optimalScale(width, height))
	frame := a.cube.RenderFrame(width, height)

	angleX, angleY, angleZ := a.cube.Angles()
	stats := window.Stats{
		Frame:  a.frame,
		Scale:  a.cube.Scale(),
		Width:  width,
		Height: height,
		AngleX: angleX,
		AngleY: angleY,
		AngleZ: angleZ,
	}
	if err := a.wind.Present(frame, stats); err != nil {
		return false, err
	}

	a.cube.Advance()
	a.frame++
	util.Trace("frame=%d grid=%dx%d scale=%d", a.frame, width, height, stats.Scale)

	return true, nil
}

// Run drives Step at TARGET_FPS until the window closes, Stop is called, or
// a present error occurs. An error is fatal for the run: retrying after an
// unknown display fault would just fail again.
func (a *AQCube) Run() error {
	synchronizer := window.NewTimeSynchronizer(constant.TARGET_FPS)
	for a.running.Get() {
		cont, err := a.wind.HandleEvents()
		if err != nil {
			return err
		}
		if !cont {
			break
		}

		drew, err := a.Step()
		if err != nil {
			return err
		}
		if !drew {
			// Viewport not sized yet. Retry after a short wait.
			time.Sleep(constant.IDLE_WAIT_MS * time.Millisecond)
			continue
		}

		synchronizer.MaySleep()
	}
	return nil
}

func (a *AQCube) Running() bool {
	return a.running.Get()
}

func (a *AQCube) FrameCount() uint64 {
	return a.frame
}

// Stop requests cooperative shutdown; the loop observes the flag at the top
// of its next iteration and exits without producing another frame.
func (a *AQCube) Stop() {
	a.running.Set(false)
}
