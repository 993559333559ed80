package stage

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/tetra3d"

	"github.com/solarlune/scrollscene"
)

// Camera is a perspective tetra3d camera.
type Camera struct {
	camera     *tetra3d.Camera
	projection scrollscene.Projection
}

// NewCamera creates a camera placed as configured. Its render size follows the Renderer it's drawn with.
func NewCamera(cfg scrollscene.CameraConfig) *Camera {
	camera := tetra3d.NewCamera(1, 1)
	camera.SetLocalPosition(cfg.Position[0], cfg.Position[1], cfg.Position[2])
	c := &Camera{camera: camera}
	c.SetProjection(cfg.Projection())
	return c
}

// SetProjection applies the field of view and clipping range. tetra3d derives the aspect ratio from the render size.
func (c *Camera) SetProjection(projection scrollscene.Projection) {
	c.projection = projection
	c.camera.SetFieldOfView(projection.FieldOfView)
	c.camera.SetNear(projection.Near)
	c.camera.SetFar(projection.Far)
}

// Projection returns the last projection set.
func (c *Camera) Projection() scrollscene.Projection { return c.projection }

// LookAt turns the camera to face target. The camera looks down its -Z axis, so the look-at matrix is built from
// the target back toward the camera.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.camera.SetLocalRotation(tetra3d.NewLookAtMatrix(vec(target), c.camera.LocalPosition(), tetra3d.WorldUp))
}

// Camera returns the underlying tetra3d camera.
func (c *Camera) Camera() *tetra3d.Camera { return c.camera }
