package scrollscene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	requests := cfg.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, AssetRequest{Name: "office", Source: "scene.gltf", Placement: officePlacement}, requests[0])

	proj := cfg.Camera.Projection()
	assert.Equal(t, 40.0, proj.FieldOfView)
	assert.Equal(t, 0.1, proj.Near)
	assert.Equal(t, 100.0, proj.Far)

}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scrollscene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {

	path := writeConfig(t, `
colors:
  background: "#202020"
camera:
  position: [0, 2, 6]
assets:
  - name: office
    file: models/office.glb
    position: [1, 0, 0]
animation:
  scrub_lag: 250ms
  ease: out-sine
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "#202020", cfg.Colors.Background)
	assert.Equal(t, "#aaaaff", cfg.Colors.Sky, "unset values keep their defaults")
	assert.Equal(t, mgl64.Vec3{0, 2, 6}, cfg.Camera.Position)
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.ScrubLag)
	assert.Equal(t, "out-sine", cfg.Animation.Ease)
	assert.Len(t, cfg.Animation.Keyframes, 6)

	requests := cfg.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "models", "office.glb"), requests[0].Source)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, requests[0].Placement.Position)

}

func TestLoadConfigRejectsInvalid(t *testing.T) {

	for name, text := range map[string]string{
		"bad color":        "colors:\n  sky: not-a-color\n",
		"unknown trigger":  "animation:\n  trigger: page9\n",
		"unknown ease":     "animation:\n  ease: wobble\n",
		"no sections":      "page:\n  sections: []\n",
		"bad clipping":     "camera:\n  near: 10\n  far: 1\n",
		"duplicate assets": "assets:\n  - {name: a, file: a.gltf}\n  - {name: a, file: b.gltf}\n",
		"unknown model": `animation:
  keyframes:
    - {model: chair, property: position, values: {x: 1}, section: 0}
`,
		"unknown axis": `animation:
  keyframes:
    - {model: office, property: position, values: {w: 1}, section: 0}
`,
		"sections out of order": `animation:
  keyframes:
    - {model: office, property: position, values: {x: 1}, section: 1}
    - {model: office, property: position, values: {x: 2}, section: 0}
`,
		"not yaml": "colors: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, text))
			assert.Error(t, err)
		})
	}

}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
