package stage

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/solarlune/tetra3d"

	"github.com/solarlune/scrollscene"
	"github.com/solarlune/scrollscene/asset"
)

// GLTFFetcher loads .gltf and .glb files from disk.
type GLTFFetcher struct {
	Options *tetra3d.GLTFLoadOptions // nil uses tetra3d's defaults
}

// Fetch loads the file at source and returns a node holding the contents of its first scene.
func (f GLTFFetcher) Fetch(ctx context.Context, source string) (scrollscene.Node, error) {

	data, stats, err := asset.Pack(ctx, source)
	if err != nil {
		return nil, err
	}

	library, err := tetra3d.LoadGLTFData(bytes.NewReader(data), f.Options)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", source)
	}

	if len(library.Scenes) == 0 {
		return nil, errors.Errorf("%s contains no scenes", source)
	}

	root := tetra3d.NewNode(filepath.Base(source))

	var children []tetra3d.INode
	library.Scenes[0].Root.Children().ForEach(func(child tetra3d.INode) bool {
		children = append(children, child)
		return true
	})
	root.AddChildren(children...)

	scrollscene.Logger().Debug("fetched gltf",
		"source", source,
		"nodes", stats.Nodes,
		"meshes", stats.Meshes,
		"materials", stats.Materials,
		"images", stats.Images,
	)

	return Wrap(root), nil

}
