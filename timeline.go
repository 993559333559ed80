package scrollscene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property names a transform property of a Node that a Timeline can animate.
type Property int

const (
	PropertyPosition Property = iota // Local position
	PropertyRotation                 // Local Euler rotation, in radians
)

func (p Property) String() string {
	switch p {
	case PropertyPosition:
		return "position"
	case PropertyRotation:
		return "rotation"
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty parses a property name ("position" or "rotation").
func ParseProperty(name string) (Property, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "position":
		return PropertyPosition, nil
	case "rotation":
		return PropertyRotation, nil
	}
	return 0, errors.Errorf("unknown property %q", name)
}

func (p Property) get(node Node) mgl64.Vec3 {
	if p == PropertyRotation {
		return node.Rotation()
	}
	return node.Position()
}

func (p Property) set(node Node, value mgl64.Vec3) {
	if p == PropertyRotation {
		node.SetRotation(value)
		return
	}
	node.SetPosition(value)
}

// Axis is a single component of a Property.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis parses an axis name ("x", "y" or "z").
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, errors.Errorf("unknown axis %q", name)
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

// Easing returns the easing function registered under name. An empty name is linear.
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames returns the names accepted by Easing, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keyframe sets absolute target values for some axes of a Node's property, reached over the keyframe duration
// starting at At.
type Keyframe struct {
	Target   Node
	Property Property
	Values   map[Axis]float64
	At       float64
}

// Timeline is an ordered list of keyframes that can be evaluated at any point in time. Evaluating is a pure function
// of time, so a timeline can be scrubbed back and forth freely.
type Timeline struct {
	// KeyframeDuration is how long each keyframe takes to reach its values. Defaults to 1.
	KeyframeDuration float64
	// Ease shapes each keyframe's interpolation. Defaults to linear.
	Ease ease.TweenFunc

	keyframes []Keyframe
	tracks    []*track
	built     bool
}

type trackKey struct {
	target   Node
	property Property
	axis     Axis
}

type track struct {
	trackKey
	initial  float64
	segments []segment
}

type segment struct {
	start, duration float64
	end             float64
	tween           *gween.Tween
}

// NewTimeline creates a new, empty Timeline with one-unit linear keyframes.
func NewTimeline() *Timeline {
	return &Timeline{
		KeyframeDuration: 1,
		Ease:             ease.Linear,
	}
}

// To appends a keyframe that moves target's property to the given values, starting at time at. Keyframes have to be
// added in non-decreasing order of at; keyframes sharing the same at play together.
func (tl *Timeline) To(target Node, property Property, values map[Axis]float64, at float64) error {

	if at < 0 {
		return errors.Wrapf(ErrOutOfOrder, "keyframe at %v is before the start of the timeline", at)
	}

	if n := len(tl.keyframes); n > 0 && at < tl.keyframes[n-1].At {
		return errors.Wrapf(ErrOutOfOrder, "keyframe at %v comes after one at %v", at, tl.keyframes[n-1].At)
	}

	copied := make(map[Axis]float64, len(values))
	for axis, v := range values {
		copied[axis] = v
	}

	tl.keyframes = append(tl.keyframes, Keyframe{Target: target, Property: property, Values: copied, At: at})
	tl.built = false

	return nil

}

// Keyframes returns the timeline's keyframes in declaration order.
func (tl *Timeline) Keyframes() []Keyframe {
	return append([]Keyframe(nil), tl.keyframes...)
}

// Duration returns the time at which the last keyframe finishes.
func (tl *Timeline) Duration() float64 {
	if len(tl.keyframes) == 0 {
		return 0
	}
	return tl.keyframes[len(tl.keyframes)-1].At + tl.keyframeDuration()
}

func (tl *Timeline) keyframeDuration() float64 {
	if tl.KeyframeDuration <= 0 {
		return 1
	}
	return tl.KeyframeDuration
}

// Build captures the current value of every animated property as the timeline's starting point. Seek builds the
// timeline on first use, so calling Build is only needed to capture the starting values at a particular moment.
func (tl *Timeline) Build() {

	easing := tl.Ease
	if easing == nil {
		easing = ease.Linear
	}
	duration := tl.keyframeDuration()

	tl.tracks = tl.tracks[:0]
	index := map[trackKey]*track{}

	for _, kf := range tl.keyframes {

		// Map iteration order is random; sort the axes so tracks are created deterministically.
		axes := make([]Axis, 0, len(kf.Values))
		for axis := range kf.Values {
			axes = append(axes, axis)
		}
		sort.Slice(axes, func(i, j int) bool { return axes[i] < axes[j] })

		for _, axis := range axes {

			key := trackKey{target: kf.Target, property: kf.Property, axis: axis}
			tr, ok := index[key]
			if !ok {
				tr = &track{trackKey: key, initial: kf.Property.get(kf.Target)[axis]}
				index[key] = tr
				tl.tracks = append(tl.tracks, tr)
			}

			// Earlier segments may still be running at kf.At, so start from wherever they have got to.
			begin := tr.valueAt(kf.At)
			end := kf.Values[axis]

			tr.segments = append(tr.segments, segment{
				start:    kf.At,
				duration: duration,
				end:      end,
				tween:    gween.New(float32(begin), float32(end), float32(duration), easing),
			})

		}

	}

	tl.built = true

}

// Seek sets every animated property to its value at time t.
func (tl *Timeline) Seek(t float64) {

	if !tl.built {
		tl.Build()
	}

	for _, tr := range tl.tracks {
		value := tr.valueAt(t)
		current := tr.property.get(tr.target)
		current[tr.axis] = value
		tr.property.set(tr.target, current)
	}

}

func (tr *track) valueAt(t float64) float64 {

	value := tr.initial

	for _, seg := range tr.segments {

		elapsed := t - seg.start

		// Segments are ordered by start; before a segment begins, the previous segment's value holds.
		if elapsed <= 0 {
			break
		}

		if elapsed >= seg.duration {
			value = seg.end
			continue
		}

		current, _ := seg.tween.Set(float32(elapsed))
		value = float64(current)

	}

	return value

}
