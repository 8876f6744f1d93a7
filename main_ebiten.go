//go:build ebiten && !sdl2

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/aqcube/util"
	"github.com/ushitora-anqou/aqcube/window"
)

// Game adapts the controller to ebiten's inverted control flow: one
// controller step per ebiten tick, paced by SetTPS instead of the
// controller's own synchronizer.
type Game struct {
	aqcube *AQCube
	wind   *window.EbitenWindow
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.wind.Layout(outsideWidth, outsideHeight)
}

func (g *Game) Update() error {
	cont, err := g.wind.HandleEvents()
	if err != nil {
		return err
	}
	if !cont || !g.aqcube.Running() {
		return ebiten.Termination
	}
	if _, err := g.aqcube.Step(); err != nil {
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.wind.Draw(screen)
}

func runEbiten() error {
	if os.Getenv("AQCUBE_TRACE") == "1" {
		util.EnableTrace()
	}

	window.EbitenInitialize()
	wind := window.NewEbitenWindow()
	aqcube := NewAQCube(wind)

	err := ebiten.RunGame(&Game{aqcube, wind})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	err := runEbiten()
	if err != nil {
		log.Fatal(err)
	}
}
