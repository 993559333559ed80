package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/solarlune/scrollscene"
	"github.com/solarlune/scrollscene/stage"
)

// Game drives a Presenter from Ebitengine's game loop.
type Game struct {
	Presenter *scrollscene.Presenter
	Scene     *stage.Scene
	Renderer  *stage.Renderer
	Container *windowContainer
	System    systemHandler
	Scroll    scrollscene.ScrollConfig
}

func (g *Game) Update() error {

	if err := g.System.Update(); err != nil {
		return err
	}

	g.handleScrolling()

	g.Presenter.Update(1 / float64(ebiten.TPS()))

	return nil

}

func (g *Game) handleScrolling() {

	page := g.Presenter.Page
	step := g.Scroll.KeyStep * page.ViewportHeight()

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.Presenter.Scroll(-wy * g.Scroll.WheelStep)
	}

	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.Presenter.Scroll(step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.Presenter.Scroll(-step)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Presenter.Scroll(page.ViewportHeight())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.Presenter.Scroll(-page.ViewportHeight())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.Presenter.ScrollTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.Presenter.ScrollTo(page.MaxOffset())
	}

}

func (g *Game) Draw(screen *ebiten.Image) {

	g.Presenter.Draw()
	g.Renderer.DrawTo(screen, g.Scene)

	drawLoading(screen, g.Presenter.Pipeline)

	if g.System.DrawMarkers {
		drawMarkers(screen, g.Presenter)
	}

	if g.System.DrawDebugText {
		drawDebug(screen, g.Presenter)
	}

	g.System.Draw(screen)

}

// Layout reports the window size to the presentation. The renderer's buffer may be larger than the screen; it's
// scaled down when drawn.
func (g *Game) Layout(w, h int) (int, int) {
	if g.Container.set(w, h) {
		g.Presenter.Post(scrollscene.ResizeEvent{})
	}
	return w, h
}
