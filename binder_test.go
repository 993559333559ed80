package scrollscene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// officeBinder returns a binder over a single four-viewport section, and a registry holding the office model at its
// load-time placement.
func officeBinder(pref MotionPreference) (*Binder, *Registry, *fakeNode) {

	page := NewPage(Section{Name: "page1", Height: 4})
	page.SetViewportHeight(100)

	animation := DefaultConfig().Animation
	animation.ScrubLag = 0

	office := newFakeNode("scene.gltf")
	officePlacement.Apply(office)
	group := newFakeGroup("office")
	group.Add(office)

	registry := NewRegistry()
	if err := registry.Register("office", group); err != nil {
		panic(err)
	}

	return NewBinder(page, MotionGate{Preference: StaticPreference(pref)}, animation), registry, office

}

func scrollBinder(b *Binder, offset float64) {
	b.Handle(ScrollPositionChanged{Offset: b.Page.ScrollTo(offset)})
	b.Update(1.0 / 60)
}

func TestBinderScrubsWithScroll(t *testing.T) {

	binder, registry, office := officeBinder(MotionNoPreference)
	require.NoError(t, binder.Setup(registry))
	assert.Equal(t, BoundScrubbing, binder.State())
	assert.Equal(t, ScrollBinding{Start: 0, End: 300}, binder.Binding())

	assertVec(t, officePlacement.Position, office.Position())
	assertVec(t, officePlacement.Rotation, office.Rotation())

	scrollBinder(binder, 150)
	assert.InDelta(t, 0.5, binder.Progress(), 1e-9)
	assertVec(t, mgl64.Vec3{1, 1, 2}, office.Position())
	assertVec(t, mgl64.Vec3{0, 1.5, 0}, office.Rotation())

	scrollBinder(binder, 300)
	assertVec(t, mgl64.Vec3{-0.2, 1, 3.2}, office.Position())
	assertVec(t, mgl64.Vec3{0, 3.05, 0}, office.Rotation())

	// Scrolling back up retraces the same states.
	scrollBinder(binder, 75)
	assertVec(t, mgl64.Vec3{0.35, 1, 0.6}, office.Position())
	assertVec(t, mgl64.Vec3{0, 3.15, 0}, office.Rotation())

	scrollBinder(binder, 0)
	assertVec(t, officePlacement.Position, office.Position())
	assertVec(t, officePlacement.Rotation, office.Rotation())

}

func TestBinderRefreshesOnResize(t *testing.T) {

	binder, registry, office := officeBinder(MotionNoPreference)
	require.NoError(t, binder.Setup(registry))
	scrollBinder(binder, 150)

	binder.Page.SetViewportHeight(200)
	binder.Handle(ResizeEvent{})
	binder.Update(1.0 / 60)

	assert.Equal(t, ScrollBinding{Start: 0, End: 600}, binder.Binding())
	assert.InDelta(t, 0.25, binder.Progress(), 1e-9)
	assertVec(t, mgl64.Vec3{0.35, 1, 0.6}, office.Position())

}

func TestBinderStartsAtCurrentScroll(t *testing.T) {
	binder, registry, office := officeBinder(MotionNoPreference)
	binder.Page.ScrollTo(300)
	require.NoError(t, binder.Setup(registry))
	assertVec(t, mgl64.Vec3{-0.2, 1, 3.2}, office.Position())
}

func TestBinderReducedMotion(t *testing.T) {

	binder, registry, office := officeBinder(MotionReduce)
	require.NoError(t, binder.Setup(registry))
	assert.Equal(t, BoundStatic, binder.State())
	assert.Nil(t, binder.Timeline())

	scrollBinder(binder, 300)
	assert.Equal(t, officePlacement.Position, office.Position())
	assert.Equal(t, officePlacement.Rotation, office.Rotation())
	assert.Zero(t, binder.Progress())

}

func TestBinderSetupOnce(t *testing.T) {
	binder, registry, _ := officeBinder(MotionNoPreference)
	require.NoError(t, binder.Setup(registry))
	assert.ErrorIs(t, binder.Setup(registry), ErrAlreadyBound)
}

func TestBinderMissingModel(t *testing.T) {

	binder, _, _ := officeBinder(MotionNoPreference)

	err := binder.Setup(NewRegistry())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, Unbound, binder.State())

	// An unbound binder ignores events.
	scrollBinder(binder, 100)
	assert.Zero(t, binder.Progress())

}
