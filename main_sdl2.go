//go:build sdl2

package main

import (
	"log"
	"os"
	"runtime/pprof"

	"github.com/ushitora-anqou/aqcube/util"
	"github.com/ushitora-anqou/aqcube/window"
)

func runSDL2() error {
	if os.Getenv("AQCUBE_TRACE") == "1" {
		util.EnableTrace()
	}
	if filename := os.Getenv("AQCUBE_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		return err
	}

	// Create a window
	wind, err := window.NewSDLWindow()
	if err != nil {
		return err
	}
	defer wind.Finalize()

	// Go animation
	aqcube := NewAQCube(wind)
	return aqcube.Run()
}

func main() {
	err := runSDL2()
	if err != nil {
		log.Fatal(err)
	}
}
