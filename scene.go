// Package scrollscene presents a 3D model whose transform follows the scroll position of a virtual page. The
// package is engine-agnostic: rendering, scene graph and asset decoding are reached through the interfaces below.
package scrollscene

import "github.com/go-gl/mathgl/mgl64"

// Node represents an object in the scene graph that can be positioned and rotated relative to its parent.
type Node interface {
	// Name returns the node's name.
	Name() string
	// Position returns the node's local position.
	Position() mgl64.Vec3
	// SetPosition sets the node's local position.
	SetPosition(position mgl64.Vec3)
	// Rotation returns the node's local rotation as Euler angles in radians, applied X, then Y, then Z.
	Rotation() mgl64.Vec3
	// SetRotation sets the node's local rotation as Euler angles in radians.
	SetRotation(rotation mgl64.Vec3)
	// Children returns the node's direct children.
	Children() []Node
}

// Mesh is a Node carrying renderable geometry, which can take part in shadow rendering.
type Mesh interface {
	Node
	SetCastShadow(cast bool)
	SetReceiveShadow(receive bool)
}

// Group is an empty container Node that other nodes can be parented to.
type Group interface {
	Node
	Add(child Node)
}

// GroupFactory creates a new, empty Group with the given name.
type GroupFactory func(name string) Group

// Scene is the root of everything that gets rendered.
type Scene interface {
	Add(node Node)
}

// Camera is the point of view a Scene is rendered from.
type Camera interface {
	// SetProjection updates the camera's projection, including its aspect ratio.
	SetProjection(projection Projection)
	// LookAt rotates the camera so that it faces the target, given in world space.
	LookAt(target mgl64.Vec3)
}

// Renderer produces frames of a Scene as seen by a Camera.
type Renderer interface {
	// SetSize sets the output size in device-independent pixels.
	SetSize(w, h int)
	// SetPixelRatio sets how many output pixels make up one device-independent pixel.
	SetPixelRatio(ratio float64)
	// Render draws a single frame.
	Render(scene Scene, camera Camera)
}

// Container is the host area the renderer's output is shown in.
type Container interface {
	// Size returns the current size of the container in device-independent pixels.
	Size() (w, h int)
	// DevicePixelRatio returns the display's ratio of physical to device-independent pixels.
	DevicePixelRatio() float64
}

// Projection holds the parameters of a perspective projection.
type Projection struct {
	FieldOfView float64 // Vertical field of view in degrees
	Aspect      float64 // Width / height
	Near, Far   float64
}

// Matrix returns the projection as a 4x4 matrix.
func (p Projection) Matrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(p.FieldOfView), p.Aspect, p.Near, p.Far)
}

// Walk calls fn for node and for each of its descendants, depth first, parents before children.
func Walk(node Node, fn func(Node)) {
	if node == nil {
		return
	}
	fn(node)
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}
