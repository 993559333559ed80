// Package asset reads glTF files and folds every external resource they reference into the document itself, so the
// result can be handed to loaders that only read self-contained data.
package asset

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Stats counts what a glTF document contains.
type Stats struct {
	Scenes     int
	Nodes      int
	Meshes     int
	Materials  int
	Images     int
	Animations int
}

// StatsOf counts the contents of doc.
func StatsOf(doc *gltf.Document) Stats {
	return Stats{
		Scenes:     len(doc.Scenes),
		Nodes:      len(doc.Nodes),
		Meshes:     len(doc.Meshes),
		Materials:  len(doc.Materials),
		Images:     len(doc.Images),
		Animations: len(doc.Animations),
	}
}

// Pack opens the .gltf or .glb file at path and returns it encoded as a single self-contained .gltf document.
func Pack(ctx context.Context, path string) ([]byte, Stats, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, "opening %s", path)
	}

	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	if err := Inline(doc, filepath.Dir(path)); err != nil {
		return nil, Stats{}, err
	}

	data, err := Encode(doc)
	if err != nil {
		return nil, Stats{}, err
	}

	return data, StatsOf(doc), nil

}

// Inline moves every image that isn't already stored in a buffer view into one, reading files relative to dir, and
// embeds every buffer as a data URI.
func Inline(doc *gltf.Document, dir string) error {

	imageCount := len(doc.Images)

	for i := 0; i < imageCount; i++ {

		img := doc.Images[i]
		if img.BufferView != nil {
			continue
		}

		data, err := imageData(img, dir)
		if err != nil {
			return errors.Wrapf(err, "image %d (%q)", i, img.Name)
		}

		mimeType := img.MimeType
		if mimeType == "" {
			kind, err := filetype.Match(data)
			if err != nil || !filetype.IsImage(data) {
				return errors.Errorf("image %d (%q) is not a recognized image format", i, img.Name)
			}
			mimeType = kind.MIME.Value
		}

		// WriteImage appends a new image backed by a buffer view; point the existing image at that view instead.
		index, err := modeler.WriteImage(doc, img.Name, mimeType, bytes.NewReader(data))
		if err != nil {
			return errors.Wrapf(err, "storing image %d (%q)", i, img.Name)
		}

		img.BufferView = doc.Images[index].BufferView
		img.MimeType = mimeType
		img.URI = ""

	}

	doc.Images = doc.Images[:imageCount]

	for _, buffer := range doc.Buffers {
		buffer.EmbeddedResource()
	}

	return nil

}

func imageData(img *gltf.Image, dir string) ([]byte, error) {

	if img.URI == "" {
		return nil, errors.New("image has neither a buffer view nor a URI")
	}

	if img.IsEmbeddedResource() {
		return img.MarshalData()
	}

	name, err := url.PathUnescape(img.URI)
	if err != nil {
		return nil, errors.Wrapf(err, "unescaping %q", img.URI)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, errors.Wrap(err, "reading image")
	}

	return data, nil

}

// Encode encodes doc as .gltf JSON.
func Encode(doc *gltf.Document) ([]byte, error) {
	var out bytes.Buffer
	if err := gltf.NewEncoder(&out).Encode(doc); err != nil {
		return nil, errors.Wrap(err, "encoding gltf")
	}
	return out.Bytes(), nil
}
