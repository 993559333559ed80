package asset

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneJSON = `{
	"asset": {"version": "2.0"},
	"buffers": [{"byteLength": 4, "uri": "scene.bin"}],
	"images": [{"name": "wall", "uri": "wall%20texture.png"}],
	"nodes": [{"name": "desk"}, {"name": "chair"}],
	"scenes": [{"nodes": [0, 1]}]
}`

func writeScene(t *testing.T) string {

	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, img))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.gltf"), []byte(sceneJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.bin"), []byte{1, 2, 3, 4}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wall texture.png"), pngData.Bytes(), 0o644))

	return filepath.Join(dir, "scene.gltf")

}

func TestPackInlinesExternalResources(t *testing.T) {

	data, stats, err := Pack(context.Background(), writeScene(t))
	require.NoError(t, err)

	assert.Equal(t, Stats{Scenes: 1, Nodes: 2, Images: 1}, stats)

	var doc gltf.Document
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(data)).Decode(&doc))

	require.Len(t, doc.Images, 1)
	assert.Equal(t, "wall", doc.Images[0].Name)
	assert.Empty(t, doc.Images[0].URI)
	assert.Equal(t, "image/png", doc.Images[0].MimeType)
	require.NotNil(t, doc.Images[0].BufferView)

	for _, buffer := range doc.Buffers {
		assert.True(t, strings.HasPrefix(buffer.URI, "data:"), "buffer should be embedded")
	}

}

func TestPackMissingImage(t *testing.T) {

	path := writeScene(t)
	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(path), "wall texture.png")))

	_, _, err := Pack(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wall")

}

func TestPackMissingFile(t *testing.T) {
	_, _, err := Pack(context.Background(), filepath.Join(t.TempDir(), "nope.gltf"))
	assert.Error(t, err)
}

func TestPackCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Pack(ctx, writeScene(t))
	assert.ErrorIs(t, err, context.Canceled)
}
