package scrollscene

import "math"

// DefaultMaxPixelRatio is the highest pixel ratio a Sizer renders at unless told otherwise.
const DefaultMaxPixelRatio = 2.0

// Viewport is the size of the visible area in device-independent pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns the viewport's width divided by its height.
func (v Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// Empty returns true if the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Sizer keeps a Camera's aspect ratio and a Renderer's output size in sync with a Container.
type Sizer struct {
	Container  Container
	Camera     Camera
	Renderer   Renderer
	Projection Projection // The projection to apply; Aspect is overwritten on each resize.
	// MaxPixelRatio caps the pixel ratio used for output to bound fill cost on dense displays.
	// Values <= 0 use DefaultMaxPixelRatio.
	MaxPixelRatio float64

	viewport   Viewport
	pixelRatio float64
}

// NewSizer creates a new Sizer.
func NewSizer(container Container, camera Camera, renderer Renderer, projection Projection) *Sizer {
	return &Sizer{
		Container:     container,
		Camera:        camera,
		Renderer:      renderer,
		Projection:    projection,
		MaxPixelRatio: DefaultMaxPixelRatio,
	}
}

// Resize reads the container's size and applies it to the camera and renderer. If the container has no area, Resize
// leaves everything as it was and returns false; the next resize recovers.
func (sizer *Sizer) Resize() bool {

	w, h := sizer.Container.Size()
	viewport := Viewport{Width: w, Height: h}

	if viewport.Empty() {
		Logger().Debug("container has no area, skipping resize", "width", w, "height", h)
		return false
	}

	sizer.viewport = viewport
	sizer.pixelRatio = sizer.PixelRatio(sizer.Container.DevicePixelRatio())

	sizer.Projection.Aspect = viewport.Aspect()
	sizer.Camera.SetProjection(sizer.Projection)

	sizer.Renderer.SetSize(w, h)
	sizer.Renderer.SetPixelRatio(sizer.pixelRatio)

	Logger().Debug("resized viewport", "width", w, "height", h, "pixelRatio", sizer.pixelRatio)

	return true

}

// PixelRatio returns the pixel ratio used for a display with the given device pixel ratio.
func (sizer *Sizer) PixelRatio(devicePixelRatio float64) float64 {
	max := sizer.MaxPixelRatio
	if max <= 0 {
		max = DefaultMaxPixelRatio
	}
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	return math.Min(devicePixelRatio, max)
}

// Viewport returns the last non-empty viewport applied by Resize.
func (sizer *Sizer) Viewport() Viewport {
	return sizer.viewport
}
