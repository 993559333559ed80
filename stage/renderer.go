package stage

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/solarlune/scrollscene"
)

// Renderer renders a Scene through a Camera into the camera's color texture, which DrawTo then puts on screen.
type Renderer struct {
	width, height int
	pixelRatio    float64
	last          *ebiten.Image
}

// NewRenderer creates a Renderer. Options tetra3d can't honor are logged and otherwise ignored.
func NewRenderer(cfg scrollscene.RendererConfig) *Renderer {
	if cfg.ToneMapping != "" || cfg.Shadows {
		scrollscene.Logger().Debug("renderer options not supported by tetra3d",
			"toneMapping", cfg.ToneMapping,
			"exposure", cfg.Exposure,
			"shadows", cfg.Shadows,
			"shadowType", cfg.ShadowType,
		)
	}
	return &Renderer{width: 1, height: 1, pixelRatio: 1}
}

func (r *Renderer) SetSize(w, h int) {
	r.width, r.height = w, h
}

func (r *Renderer) SetPixelRatio(ratio float64) {
	r.pixelRatio = ratio
}

// BufferSize returns the size of the rendered image in physical pixels.
func (r *Renderer) BufferSize() (w, h int) {
	w = int(math.Ceil(float64(r.width) * r.pixelRatio))
	h = int(math.Ceil(float64(r.height) * r.pixelRatio))
	return max(w, 1), max(h, 1)
}

// Render renders scene through camera; both must come from this package.
func (r *Renderer) Render(scene scrollscene.Scene, camera scrollscene.Camera) {

	s, ok := scene.(*Scene)
	if !ok {
		scrollscene.Logger().Error("renderer given a foreign scene")
		return
	}
	c, ok := camera.(*Camera)
	if !ok {
		scrollscene.Logger().Error("renderer given a foreign camera")
		return
	}

	w, h := r.BufferSize()
	if cw, ch := c.camera.Size(); cw != w || ch != h {
		c.camera.Resize(w, h)
	}

	c.camera.Clear()
	c.camera.RenderScene(s.scene)

	r.last = c.camera.ColorTexture()

}

// DrawTo fills screen with background and draws the last rendered frame over it, scaled to fill the screen.
func (r *Renderer) DrawTo(screen *ebiten.Image, background *Scene) {

	if background != nil {
		screen.Fill(background.Background().NRGBA())
	}

	if r.last == nil {
		return
	}

	opt := &ebiten.DrawImageOptions{}
	bounds := r.last.Bounds()
	sb := screen.Bounds()
	opt.GeoM.Scale(float64(sb.Dx())/float64(bounds.Dx()), float64(sb.Dy())/float64(bounds.Dy()))
	opt.Filter = ebiten.FilterLinear
	screen.DrawImage(r.last, opt)

}
