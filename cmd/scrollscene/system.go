package main

import (
	"image/png"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// systemHandler handles the keys that aren't part of the presentation itself.
type systemHandler struct {
	DrawDebugText bool
	DrawMarkers   bool
}

func (system *systemHandler) Update() error {

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		system.DrawDebugText = !system.DrawDebugText
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		system.DrawMarkers = !system.DrawMarkers
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		startProfiling()
	}

	return nil

}

// Draw saves a screenshot of screen when F12 is pressed.
func (system *systemHandler) Draw(screen *ebiten.Image) {

	if !inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return
	}

	name := "screenshot " + time.Now().Format("2006-01-02 15.04.05") + ".png"
	f, err := os.Create(name)
	if err != nil {
		slog.Error("could not save screenshot", "error", err.Error())
		return
	}
	defer f.Close()

	if err := png.Encode(f, screen); err != nil {
		slog.Error("could not save screenshot", "error", err.Error())
		return
	}

	slog.Info("saved screenshot", "file", name)

}

func startProfiling() {
	outFile, err := os.Create("./cpu.pprof")
	if err != nil {
		slog.Error("could not start profiling", "error", err.Error())
		return
	}
	slog.Info("beginning CPU profiling")
	if err := pprof.StartCPUProfile(outFile); err != nil {
		slog.Error("could not start profiling", "error", err.Error())
		outFile.Close()
		return
	}
	go func() {
		time.Sleep(2 * time.Second)
		pprof.StopCPUProfile()
		outFile.Close()
		slog.Info("CPU profiling finished", "file", outFile.Name())
	}()
}
