// Command scrollscene shows a 3D model whose placement is driven by scrolling through a virtual page.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/solarlune/scrollscene"
	"github.com/solarlune/scrollscene/stage"
)

func main() {

	configPath := flag.String("config", "", "path to a YAML configuration file; the built-in defaults are used if empty")
	reducedMotion := flag.Bool("reduced-motion", false, "prefer reduced motion, which disables the scroll animation")
	debug := flag.Bool("debug", false, "log debug messages and show debug text")
	markers := flag.Bool("markers", false, "show scroll trigger markers")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	scrollscene.SetLogger(logger)

	if err := run(*configPath, *reducedMotion || envReducedMotion(), *debug, *markers); err != nil {
		logger.Error("scrollscene failed", "error", err.Error())
		os.Exit(1)
	}

}

func envReducedMotion() bool {
	reduced, err := strconv.ParseBool(os.Getenv("PREFERS_REDUCED_MOTION"))
	return err == nil && reduced
}

func run(configPath string, reducedMotion, debug, markers bool) error {

	cfg := scrollscene.DefaultConfig()
	if configPath != "" {
		loaded, err := scrollscene.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	preference := scrollscene.MotionNoPreference
	if reducedMotion || cfg.Motion.Reduced {
		preference = scrollscene.MotionReduce
	}

	scene, err := stage.NewScene(cfg)
	if err != nil {
		return err
	}

	renderer := stage.NewRenderer(cfg.Renderer)
	container := &windowContainer{}

	presenter, err := scrollscene.NewPresenter(cfg, scrollscene.Collaborators{
		Scene:     scene,
		Camera:    stage.NewCamera(cfg.Camera),
		Renderer:  renderer,
		Container: container,
		Fetcher:   stage.GLTFFetcher{},
		NewGroup:  stage.NewGroup,
		Motion:    scrollscene.MotionGate{Preference: scrollscene.StaticPreference(preference)},
	})
	if err != nil {
		return err
	}

	game := &Game{
		Presenter: presenter,
		Scene:     scene,
		Renderer:  renderer,
		Container: container,
		System:    systemHandler{DrawDebugText: debug, DrawMarkers: markers},
		Scroll:    cfg.Scroll,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	presenter.Start(ctx)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	return nil

}
