// Package stage implements the scene collaborators on top of the tetra3d software renderer and Ebitengine.
package stage

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/tetra3d"

	"github.com/solarlune/scrollscene"
)

// Node wraps a tetra3d node. The wrapper tree is built once, so children keep their state between calls.
type Node struct {
	node     tetra3d.INode
	rotation mgl64.Vec3
	children []scrollscene.Node
}

// Model is a Node with geometry. tetra3d doesn't render shadows; the flags are kept so callers can inspect them.
type Model struct {
	*Node
	castShadow    bool
	receiveShadow bool
}

// Group is an empty Node used to parent other nodes.
type Group struct {
	*Node
}

type inoder interface {
	inode() tetra3d.INode
}

// Wrap wraps a tetra3d node and all of its descendants.
func Wrap(node tetra3d.INode) scrollscene.Node {

	wrapped := &Node{node: node}

	node.Children().ForEach(func(child tetra3d.INode) bool {
		wrapped.children = append(wrapped.children, Wrap(child))
		return true
	})

	if _, ok := node.(*tetra3d.Model); ok {
		return &Model{Node: wrapped}
	}

	return wrapped

}

// NewGroup creates an empty Group; it satisfies scrollscene.GroupFactory.
func NewGroup(name string) scrollscene.Group {
	return &Group{Node: &Node{node: tetra3d.NewNode(name)}}
}

func (n *Node) inode() tetra3d.INode { return n.node }

// INode returns the underlying tetra3d node.
func (n *Node) INode() tetra3d.INode { return n.node }

func (n *Node) Name() string { return n.node.Name() }

func (n *Node) Position() mgl64.Vec3 {
	pos := n.node.LocalPosition()
	return mgl64.Vec3{pos.X, pos.Y, pos.Z}
}

func (n *Node) SetPosition(position mgl64.Vec3) {
	n.node.SetLocalPosition(position[0], position[1], position[2])
}

// Rotation returns the Euler rotation last set through SetRotation. The rotation a node had when it was wrapped is
// not read back, so every node of a wrapped tree, including children rotated by the source file, reports zero until
// set.
func (n *Node) Rotation() mgl64.Vec3 { return n.rotation }

func (n *Node) SetRotation(rotation mgl64.Vec3) {
	n.rotation = rotation
	n.node.SetLocalRotation(eulerMatrix(rotation))
}

func (n *Node) Children() []scrollscene.Node {
	out := make([]scrollscene.Node, len(n.children))
	copy(out, n.children)
	return out
}

// Add parents child to the group. Nodes that weren't created by this package are ignored.
func (g *Group) Add(child scrollscene.Node) {
	raw, ok := child.(inoder)
	if !ok {
		scrollscene.Logger().Warn("cannot add foreign node to group", "group", g.Name(), "node", child.Name())
		return
	}
	g.node.AddChildren(raw.inode())
	g.children = append(g.children, child)
}

func (m *Model) SetCastShadow(cast bool)       { m.castShadow = cast }
func (m *Model) SetReceiveShadow(receive bool) { m.receiveShadow = receive }
func (m *Model) CastShadow() bool              { return m.castShadow }
func (m *Model) ReceiveShadow() bool           { return m.receiveShadow }

// Mesh returns the underlying tetra3d model.
func (m *Model) Mesh() *tetra3d.Model { return m.node.(*tetra3d.Model) }

func eulerMatrix(rotation mgl64.Vec3) tetra3d.Matrix4 {
	return tetra3d.NewMatrix4Rotate(1, 0, 0, rotation[0]).
		Mult(tetra3d.NewMatrix4Rotate(0, 1, 0, rotation[1])).
		Mult(tetra3d.NewMatrix4Rotate(0, 0, 1, rotation[2]))
}

func vec(v mgl64.Vec3) tetra3d.Vector {
	return tetra3d.NewVector(v[0], v[1], v[2])
}
