package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/solarlune/scrollscene"
	"github.com/solarlune/scrollscene/colors"
)

var (
	markerStart = colors.MustParse("limegreen").NRGBA()
	markerEnd   = colors.MustParse("tomato").NRGBA()
	barColor    = colors.MustParse("#aaaaff").NRGBA()
	textColor   = colors.LightGray().NRGBA()
)

// drawLoading draws a progress bar along the bottom of the screen until every asset has settled.
func drawLoading(screen *ebiten.Image, pipeline *scrollscene.Pipeline) {

	if pipeline.Done() {
		return
	}

	loaded, total := pipeline.Progress()
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	fraction := float32(0)
	if total > 0 {
		fraction = float32(loaded) / float32(total)
	}

	vector.DrawFilledRect(screen, 0, h-4, w, 4, color.NRGBA{A: 0x60}, false)
	vector.DrawFilledRect(screen, 0, h-4, w*fraction, 4, barColor, false)

}

// drawMarkers draws where the scroll trigger starts and ends relative to the viewport, along with the scroll
// position and animation state.
func drawMarkers(screen *ebiten.Image, p *scrollscene.Presenter) {

	w := float32(screen.Bounds().Dx())
	scale := float32(screen.Bounds().Dy()) / float32(max(p.Page.ViewportHeight(), 1))
	offset := p.Page.Offset()

	binding := p.Binder.Binding()
	for _, m := range []struct {
		y     float64
		label string
		c     color.Color
	}{
		{binding.Start, "start", markerStart},
		{binding.End, "end", markerEnd},
	} {
		y := float32(m.y-offset) * scale
		vector.StrokeLine(screen, 0, y, w, y, 1, m.c, false)
		text.Draw(screen, m.label, basicfont.Face7x13, int(w)-48, int(y)-2, m.c)
	}

	drawText(screen, fmt.Sprintf(
		"scroll %.0f / %.0f\nprogress %.2f\nanimation %s",
		offset, p.Page.MaxOffset(), p.Binder.Progress(), p.Binder.State(),
	), 8, 100)

}

// drawDebug draws frame timing and the key bindings.
func drawDebug(screen *ebiten.Image, p *scrollscene.Presenter) {
	drawText(screen, fmt.Sprintf(
		"FPS: %.0f TPS: %.0f frames: %d\nWheel / arrows / PgUp / PgDn: scroll\nF1: toggle this text\nF2: toggle markers\nF4: fullscreen\nF12: screenshot\nESC: quit",
		ebiten.ActualFPS(), ebiten.ActualTPS(), p.Frames.Frames(),
	), 8, 16)
}

func drawText(screen *ebiten.Image, txt string, x, y int) {
	lineHeight := basicfont.Face7x13.Metrics().Height.Ceil()
	for i, line := range strings.Split(txt, "\n") {
		text.Draw(screen, line, basicfont.Face7x13, x, y+i*lineHeight, textColor)
	}
}
