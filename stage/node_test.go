package stage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/tetra3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarlune/scrollscene"
)

func TestWrapKeepsTree(t *testing.T) {

	root := tetra3d.NewNode("root")
	child := tetra3d.NewNode("child")
	child.AddChildren(tetra3d.NewNode("grandchild"))
	root.AddChildren(child)

	wrapped := Wrap(root)

	var names []string
	scrollscene.Walk(wrapped, func(n scrollscene.Node) { names = append(names, n.Name()) })
	assert.Equal(t, []string{"root", "child", "grandchild"}, names)

	// Children are wrapped once, so state set on them sticks.
	wrapped.Children()[0].SetRotation(mgl64.Vec3{0, 1, 0})
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, wrapped.Children()[0].Rotation())

}

func TestNodePosition(t *testing.T) {
	n := Wrap(tetra3d.NewNode("n"))
	n.SetPosition(mgl64.Vec3{-0.3, 1, -0.8})
	assert.InDeltaSlice(t, []float64{-0.3, 1, -0.8}, n.Position()[:], 1e-9)
}

func TestGroupAdd(t *testing.T) {

	group := NewGroup("office")
	model := Wrap(tetra3d.NewNode("fragment"))

	group.Add(model)

	require.Len(t, group.Children(), 1)
	assert.Same(t, model, group.Children()[0])

	inner := group.(*Group).INode()
	assert.Equal(t, 1, len(childNames(inner)))

}

func TestEulerMatrixIdentity(t *testing.T) {
	assert.Equal(t, tetra3d.NewMatrix4(), eulerMatrix(mgl64.Vec3{}))
}

func childNames(node tetra3d.INode) []string {
	var names []string
	node.Children().ForEach(func(child tetra3d.INode) bool {
		names = append(names, child.Name())
		return true
	})
	return names
}
