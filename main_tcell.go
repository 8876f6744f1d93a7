//go:build !sdl2 && !ebiten

package main

import (
	"log"
	"os"
	"runtime/pprof"

	"github.com/ushitora-anqou/aqcube/util"
	"github.com/ushitora-anqou/aqcube/window"
)

func runTcell() error {
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

	// Create a window
	wind, err := window.NewTcellWindow()
	if err != nil {
		return err
	}
	defer wind.Finalize()

	// Go animation
	aqcube := NewAQCube(wind)
	return aqcube.Run()
}

func main() {
	err := runTcell()
	if err != nil {
		log.Fatal(err)
	}
}
