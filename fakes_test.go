package scrollscene

import (
	"context"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

type fakeNode struct {
	name     string
	position mgl64.Vec3
	rotation mgl64.Vec3
	children []Node
}

func newFakeNode(name string, children ...Node) *fakeNode {
	return &fakeNode{name: name, children: children}
}

func (n *fakeNode) Name() string             { return n.name }
func (n *fakeNode) Position() mgl64.Vec3     { return n.position }
func (n *fakeNode) SetPosition(p mgl64.Vec3) { n.position = p }
func (n *fakeNode) Rotation() mgl64.Vec3     { return n.rotation }
func (n *fakeNode) SetRotation(r mgl64.Vec3) { n.rotation = r }
func (n *fakeNode) Children() []Node         { return append([]Node(nil), n.children...) }
func (n *fakeNode) add(child Node)           { n.children = append(n.children, child) }

type fakeMesh struct {
	*fakeNode
	castShadow, receiveShadow bool
}

func newFakeMesh(name string) *fakeMesh {
	return &fakeMesh{fakeNode: newFakeNode(name)}
}

func (m *fakeMesh) SetCastShadow(cast bool)       { m.castShadow = cast }
func (m *fakeMesh) SetReceiveShadow(receive bool) { m.receiveShadow = receive }

type fakeGroup struct {
	*fakeNode
}

func (g *fakeGroup) Add(child Node) { g.add(child) }

func newFakeGroup(name string) Group {
	return &fakeGroup{fakeNode: newFakeNode(name)}
}

type fakeScene struct {
	nodes []Node
}

func (s *fakeScene) Add(node Node) { s.nodes = append(s.nodes, node) }

type fakeCamera struct {
	projections []Projection
	lookAts     []mgl64.Vec3
}

func (c *fakeCamera) SetProjection(p Projection) { c.projections = append(c.projections, p) }
func (c *fakeCamera) LookAt(target mgl64.Vec3)   { c.lookAts = append(c.lookAts, target) }

func (c *fakeCamera) projection() Projection {
	if len(c.projections) == 0 {
		return Projection{}
	}
	return c.projections[len(c.projections)-1]
}

type fakeRenderer struct {
	w, h       int
	pixelRatio float64
	sizes      int
	renders    int
}

func (r *fakeRenderer) SetSize(w, h int) {
	r.w, r.h = w, h
	r.sizes++
}

func (r *fakeRenderer) SetPixelRatio(ratio float64)       { r.pixelRatio = ratio }
func (r *fakeRenderer) Render(scene Scene, camera Camera) { r.renders++ }

type fakeContainer struct {
	w, h int
	dpr  float64
}

func (c *fakeContainer) Size() (int, int)          { return c.w, c.h }
func (c *fakeContainer) DevicePixelRatio() float64 { return c.dpr }

// fakeFetcher builds a fresh model for every known source. Sources with a gate block until the gate is closed.
type fakeFetcher struct {
	mu     sync.Mutex
	gates  map[string]chan struct{}
	failed map[string]error
	calls  []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{gates: map[string]chan struct{}{}, failed: map[string]error{}}
}

func (f *fakeFetcher) gate(source string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	gate := make(chan struct{})
	f.gates[source] = gate
	return gate
}

func (f *fakeFetcher) fail(source string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[source] = err
}

func (f *fakeFetcher) Fetch(ctx context.Context, source string) (Node, error) {

	f.mu.Lock()
	f.calls = append(f.calls, source)
	gate := f.gates[source]
	err := f.failed[source]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err != nil {
		return nil, err
	}

	return newFakeNode(source, newFakeMesh(source+"/desk"), newFakeNode(source+"/empty", newFakeMesh(source+"/lamp"))), nil

}

var errFetch = errors.New("fetch failed")
