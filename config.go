package scrollscene

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/solarlune/scrollscene/colors"
)

// Config describes the whole presentation: window, scene ambience, assets, page layout and animation.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Colors    ColorConfig     `yaml:"colors"`
	Fog       FogConfig       `yaml:"fog"`
	Camera    CameraConfig    `yaml:"camera"`
	Lights    LightsConfig    `yaml:"lights"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Assets    []AssetConfig   `yaml:"assets"`
	Page      PageConfig      `yaml:"page"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Motion    MotionConfig    `yaml:"motion"`
	Animation AnimationConfig `yaml:"animation"`

	dir string // Directory relative asset paths are resolved against
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ColorConfig holds color strings, either names ("white") or hex ("#aaaaff").
type ColorConfig struct {
	Background string `yaml:"background"`
	Light      string `yaml:"light"`
	Sky        string `yaml:"sky"`
	Ground     string `yaml:"ground"`
}

// FogConfig is the distance range, in world units, over which fog fades in to the background color.
type FogConfig struct {
	Enabled bool    `yaml:"enabled"`
	Near    float64 `yaml:"near"`
	Far     float64 `yaml:"far"`
}

type CameraConfig struct {
	FieldOfView float64    `yaml:"fov"`
	Near        float64    `yaml:"near"`
	Far         float64    `yaml:"far"`
	Position    mgl64.Vec3 `yaml:"position"`
	Target      mgl64.Vec3 `yaml:"target"`
}

// Projection returns the camera's projection; the aspect ratio is filled in when the viewport is sized.
func (c CameraConfig) Projection() Projection {
	return Projection{FieldOfView: c.FieldOfView, Aspect: 1, Near: c.Near, Far: c.Far}
}

type LightsConfig struct {
	Directional DirectionalLightConfig `yaml:"directional"`
	Hemisphere  HemisphereLightConfig  `yaml:"hemisphere"`
}

type DirectionalLightConfig struct {
	Intensity     float64    `yaml:"intensity"`
	Position      mgl64.Vec3 `yaml:"position"`
	CastShadow    bool       `yaml:"cast_shadow"`
	ShadowMapSize int        `yaml:"shadow_map_size"`
	ShadowFar     float64    `yaml:"shadow_far"`
	NormalBias    float64    `yaml:"normal_bias"`
}

type HemisphereLightConfig struct {
	Intensity float64 `yaml:"intensity"`
}

// RendererConfig is passed through to the renderer; options it can't honor are ignored.
type RendererConfig struct {
	MaxPixelRatio float64 `yaml:"max_pixel_ratio"`
	Antialias     bool    `yaml:"antialias"`
	ToneMapping   string  `yaml:"tone_mapping"`
	Exposure      float64 `yaml:"exposure"`
	Shadows       bool    `yaml:"shadows"`
	ShadowType    string  `yaml:"shadow_type"`
}

type AssetConfig struct {
	Name     string     `yaml:"name"`
	File     string     `yaml:"file"`
	Rotation mgl64.Vec3 `yaml:"rotation"`
	Position mgl64.Vec3 `yaml:"position"`
}

type PageConfig struct {
	Sections []SectionConfig `yaml:"sections"`
}

type SectionConfig struct {
	Name   string  `yaml:"name"`
	Height float64 `yaml:"height"` // In viewport heights
}

type ScrollConfig struct {
	WheelStep float64 `yaml:"wheel_step"` // Pixels scrolled per wheel notch
	KeyStep   float64 `yaml:"key_step"`   // Fraction of the viewport scrolled by the arrow keys
}

type MotionConfig struct {
	Reduced bool `yaml:"reduced"`
}

// AnimationConfig describes the scroll-driven timeline.
type AnimationConfig struct {
	Trigger          string           `yaml:"trigger"`   // Name of the page section that drives the timeline
	ScrubLag         time.Duration    `yaml:"scrub_lag"` // How long the animation takes to catch up with scrolling
	KeyframeDuration float64          `yaml:"keyframe_duration"`
	Ease             string           `yaml:"ease"`
	Keyframes        []KeyframeConfig `yaml:"keyframes"`
}

// KeyframeConfig sets absolute values for some axes of a model's property during a section of the timeline.
type KeyframeConfig struct {
	Model    string             `yaml:"model"`
	Property string             `yaml:"property"`
	Values   map[string]float64 `yaml:"values"`
	Section  int                `yaml:"section"`
}

// DefaultConfig returns the configuration for the office presentation.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "scrollscene",
			Width:  1280,
			Height: 720,
		},
		Colors: ColorConfig{
			Background: "white",
			Light:      "#ffffff",
			Sky:        "#aaaaff",
			Ground:     "#88ff88",
		},
		Fog: FogConfig{Enabled: true, Near: 15, Far: 20},
		Camera: CameraConfig{
			FieldOfView: 40,
			Near:        0.1,
			Far:         100,
			Position:    mgl64.Vec3{0, 1, 5},
			Target:      mgl64.Vec3{0, 1, 0},
		},
		Lights: LightsConfig{
			Directional: DirectionalLightConfig{
				Intensity:     2,
				Position:      mgl64.Vec3{2, 5, 3},
				CastShadow:    true,
				ShadowMapSize: 1024,
				ShadowFar:     10,
				NormalBias:    0.05,
			},
			Hemisphere: HemisphereLightConfig{Intensity: 0.5},
		},
		Renderer: RendererConfig{
			MaxPixelRatio: DefaultMaxPixelRatio,
			Antialias:     true,
			ToneMapping:   "reinhard",
			Exposure:      5,
			Shadows:       true,
			ShadowType:    "pcf-soft",
		},
		Assets: []AssetConfig{
			{
				Name:     "office",
				File:     "scene.gltf",
				Rotation: mgl64.Vec3{0, 4.8, 0},
				Position: mgl64.Vec3{-0.3, 1, -0.8},
			},
		},
		Page: PageConfig{
			Sections: []SectionConfig{{Name: "page1", Height: 4}},
		},
		Scroll: ScrollConfig{WheelStep: 60, KeyStep: 0.1},
		Animation: AnimationConfig{
			Trigger:          "page1",
			ScrubLag:         DefaultScrubLag,
			KeyframeDuration: 1,
			Ease:             "linear",
			Keyframes: []KeyframeConfig{
				{Model: "office", Property: "rotation", Values: map[string]float64{"y": 1.5}, Section: 0},
				{Model: "office", Property: "position", Values: map[string]float64{"x": 1}, Section: 0},
				{Model: "office", Property: "position", Values: map[string]float64{"z": 2}, Section: 0},
				{Model: "office", Property: "rotation", Values: map[string]float64{"y": 3.05}, Section: 1},
				{Model: "office", Property: "position", Values: map[string]float64{"x": -0.2}, Section: 1},
				{Model: "office", Property: "position", Values: map[string]float64{"z": 3.2}, Section: 1},
			},
		},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result. Relative asset paths are resolved
// against the file's directory.
func LoadConfig(path string) (Config, error) {

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil

}

// Validate checks the configuration for values that can't work.
func (cfg Config) Validate() error {

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height)
	}

	for field, value := range map[string]string{
		"background": cfg.Colors.Background,
		"light":      cfg.Colors.Light,
		"sky":        cfg.Colors.Sky,
		"ground":     cfg.Colors.Ground,
	} {
		if _, err := colors.Parse(value); err != nil {
			return errors.Wrapf(err, "colors.%s", field)
		}
	}

	if cfg.Fog.Enabled && (cfg.Fog.Near < 0 || cfg.Fog.Far <= cfg.Fog.Near) {
		return errors.Errorf("fog range %v..%v is empty", cfg.Fog.Near, cfg.Fog.Far)
	}

	if cfg.Camera.FieldOfView <= 0 || cfg.Camera.FieldOfView >= 180 {
		return errors.Errorf("camera fov %v must be between 0 and 180", cfg.Camera.FieldOfView)
	}

	if cfg.Camera.Near <= 0 || cfg.Camera.Far <= cfg.Camera.Near {
		return errors.Errorf("camera clipping range %v..%v is invalid", cfg.Camera.Near, cfg.Camera.Far)
	}

	if cfg.Renderer.MaxPixelRatio <= 0 {
		return errors.Errorf("renderer max_pixel_ratio %v must be positive", cfg.Renderer.MaxPixelRatio)
	}

	if len(cfg.Assets) == 0 {
		return ErrNoAssets
	}

	assets := map[string]bool{}
	for _, asset := range cfg.Assets {
		if asset.Name == "" || asset.File == "" {
			return errors.Errorf("asset %q needs both a name and a file", asset.Name)
		}
		if assets[asset.Name] {
			return errors.Wrapf(ErrDuplicateAsset, "asset %q", asset.Name)
		}
		assets[asset.Name] = true
	}

	if len(cfg.Page.Sections) == 0 {
		return errors.New("page needs at least one section")
	}

	for _, section := range cfg.Page.Sections {
		if section.Height <= 0 {
			return errors.Errorf("section %q height %v must be positive", section.Name, section.Height)
		}
	}

	if _, _, err := cfg.NewPage().Bounds(cfg.Animation.Trigger); err != nil {
		return errors.Wrap(err, "animation trigger")
	}

	if cfg.Animation.ScrubLag < 0 {
		return errors.Errorf("animation scrub_lag %v must not be negative", cfg.Animation.ScrubLag)
	}

	if _, err := Easing(cfg.Animation.Ease); err != nil {
		return err
	}

	last := 0
	for i, kf := range cfg.Animation.Keyframes {
		if !assets[kf.Model] {
			return errors.Wrapf(ErrNotFound, "keyframe %d model %q", i, kf.Model)
		}
		if _, err := ParseProperty(kf.Property); err != nil {
			return errors.Wrapf(err, "keyframe %d", i)
		}
		for axis := range kf.Values {
			if _, err := ParseAxis(axis); err != nil {
				return errors.Wrapf(err, "keyframe %d", i)
			}
		}
		if kf.Section < last {
			return errors.Wrapf(ErrOutOfOrder, "keyframe %d section %d follows section %d", i, kf.Section, last)
		}
		last = kf.Section
	}

	return nil

}

// Requests returns the asset requests for the configured assets.
func (cfg Config) Requests() []AssetRequest {
	requests := make([]AssetRequest, 0, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		source := asset.File
		if cfg.dir != "" && !filepath.IsAbs(source) {
			source = filepath.Join(cfg.dir, source)
		}
		requests = append(requests, AssetRequest{
			Name:      asset.Name,
			Source:    source,
			Placement: Placement{Rotation: asset.Rotation, Position: asset.Position},
		})
	}
	return requests
}

// NewPage returns a new Page laid out from the configured sections.
func (cfg Config) NewPage() *Page {
	sections := make([]Section, 0, len(cfg.Page.Sections))
	for _, s := range cfg.Page.Sections {
		sections = append(sections, Section{Name: s.Name, Height: s.Height})
	}
	return NewPage(sections...)
}
