package scrollscene

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// FrameDriver aims the camera and renders one frame per step. It renders whatever the scene holds at the time,
// so the scene shows up progressively as assets arrive.
type FrameDriver struct {
	Scene    Scene
	Camera   Camera
	Renderer Renderer
	Target   mgl64.Vec3 // World-space point the camera looks at every frame

	frames uint64
}

// NewFrameDriver creates a new FrameDriver.
func NewFrameDriver(scene Scene, camera Camera, renderer Renderer, target mgl64.Vec3) *FrameDriver {
	return &FrameDriver{
		Scene:    scene,
		Camera:   camera,
		Renderer: renderer,
		Target:   target,
	}
}

// Step renders a single frame.
func (fd *FrameDriver) Step() {
	fd.Camera.LookAt(fd.Target)
	fd.Renderer.Render(fd.Scene, fd.Camera)
	fd.frames++
}

// Frames returns how many frames have been rendered.
func (fd *FrameDriver) Frames() uint64 {
	return fd.frames
}

// Run steps once for every tick received until the context is done or the tick channel is closed.
func (fd *FrameDriver) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			fd.Step()
		}
	}
}
