package stage

import (
	"github.com/solarlune/tetra3d"

	"github.com/solarlune/scrollscene"
	"github.com/solarlune/scrollscene/colors"
)

// Scene is a tetra3d scene set up with the configured background, fog and lights.
type Scene struct {
	scene      *tetra3d.Scene
	background colors.Color
	sun        *tetra3d.DirectionalLight
	ambient    *tetra3d.AmbientLight
}

// NewScene creates a Scene from the configuration. cfg is expected to be valid.
func NewScene(cfg scrollscene.Config) (*Scene, error) {

	background, err := colors.Parse(cfg.Colors.Background)
	if err != nil {
		return nil, err
	}
	light, err := colors.Parse(cfg.Colors.Light)
	if err != nil {
		return nil, err
	}
	sky, err := colors.Parse(cfg.Colors.Sky)
	if err != nil {
		return nil, err
	}
	ground, err := colors.Parse(cfg.Colors.Ground)
	if err != nil {
		return nil, err
	}

	scene := tetra3d.NewScene("scrollscene")

	world := scene.World
	world.ClearColor = tetra3d.NewColor(background.R, background.G, background.B, background.A)
	world.FogOn = cfg.Fog.Enabled
	if cfg.Fog.Enabled {
		// The fog range is a fraction of the camera's clipping range.
		world.FogMode = tetra3d.FogOverwrite
		world.FogColor = tetra3d.NewColor(background.R, background.G, background.B, background.A)
		world.FogRange[0] = float32(cfg.Fog.Near / cfg.Camera.Far)
		world.FogRange[1] = float32(cfg.Fog.Far / cfg.Camera.Far)
	}

	dir := cfg.Lights.Directional
	sun := tetra3d.NewDirectionalLight("sun", light.R, light.G, light.B, float32(dir.Intensity))
	sun.SetLocalPosition(dir.Position[0], dir.Position[1], dir.Position[2])
	sun.SetLocalRotation(tetra3d.NewLookAtMatrix(tetra3d.NewVector(0, 0, 0), vec(dir.Position), tetra3d.WorldUp))

	// tetra3d has no hemisphere light, so the sky and ground colors are averaged into an ambient light.
	hemi := sky.Mix(ground, 0.5)
	ambient := tetra3d.NewAmbientLight("hemisphere", hemi.R, hemi.G, hemi.B, float32(cfg.Lights.Hemisphere.Intensity))

	scene.Root.AddChildren(sun, ambient)

	scrollscene.Logger().Debug("scene created",
		"background", background.Hex(),
		"fog", cfg.Fog.Enabled,
		"sunShadows", dir.CastShadow,
		"shadowMapSize", dir.ShadowMapSize,
	)

	return &Scene{scene: scene, background: background, sun: sun, ambient: ambient}, nil

}

// Add parents node to the scene root. Nodes that weren't created by this package are ignored.
func (s *Scene) Add(node scrollscene.Node) {
	raw, ok := node.(inoder)
	if !ok {
		scrollscene.Logger().Warn("cannot add foreign node to scene", "node", node.Name())
		return
	}
	s.scene.Root.AddChildren(raw.inode())
}

// Background returns the color drawn behind the scene.
func (s *Scene) Background() colors.Color { return s.background }

// Scene returns the underlying tetra3d scene.
func (s *Scene) Scene() *tetra3d.Scene { return s.scene }
