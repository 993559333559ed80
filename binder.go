package scrollscene

import (
	"fmt"

	"github.com/pkg/errors"
)

// BinderState is where a Binder is in its lifecycle.
type BinderState int

const (
	Unbound        BinderState = iota // No animation installed yet
	BoundStatic                       // Reduced motion was preferred; models keep their load-time transform
	BoundScrubbing                    // The timeline follows the scroll position
)

func (s BinderState) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case BoundStatic:
		return "bound-static"
	case BoundScrubbing:
		return "bound-scrubbing"
	}
	return fmt.Sprintf("BinderState(%d)", int(s))
}

// Binder ties loaded models to the page's scroll position through a Timeline.
type Binder struct {
	Animation AnimationConfig
	Page      *Page
	Gate      MotionGate

	state    BinderState
	setup    bool
	timeline *Timeline
	binding  ScrollBinding
	scrubber *Scrubber
}

// NewBinder creates a new, unbound Binder.
func NewBinder(page *Page, gate MotionGate, animation AnimationConfig) *Binder {
	return &Binder{
		Animation: animation,
		Page:      page,
		Gate:      gate,
	}
}

// Setup installs the scroll animation for the models in the registry. It should be called once every asset has
// loaded, and can only be called once; later calls return ErrAlreadyBound. When reduced motion is preferred, nothing
// is installed and the binder becomes BoundStatic. If a referenced model is missing, the binder stays Unbound.
func (b *Binder) Setup(registry *Registry) error {

	if b.setup {
		return ErrAlreadyBound
	}
	b.setup = true

	installed, err := b.Gate.Match(map[MotionPreference]SetupFunc{
		MotionNoPreference: func() error { return b.scrollAnimation(registry) },
	})

	if err != nil {
		return err
	}

	if !installed {
		b.state = BoundStatic
		Logger().Info("reduced motion preferred, scroll animation disabled")
		return nil
	}

	b.state = BoundScrubbing
	Logger().Info("scroll animation bound",
		"trigger", b.Animation.Trigger,
		"keyframes", len(b.timeline.Keyframes()),
		"duration", b.timeline.Duration(),
	)

	return nil

}

func (b *Binder) scrollAnimation(registry *Registry) error {

	binding, err := NewScrollBinding(b.Page, b.Animation.Trigger, b.Animation.ScrubLag)
	if err != nil {
		return errors.Wrap(err, "binding scroll animation")
	}

	easing, err := Easing(b.Animation.Ease)
	if err != nil {
		return err
	}

	timeline := NewTimeline()
	timeline.Ease = easing
	if b.Animation.KeyframeDuration > 0 {
		timeline.KeyframeDuration = b.Animation.KeyframeDuration
	}

	for i, kf := range b.Animation.Keyframes {

		model, err := registry.Lookup(kf.Model)
		if err != nil {
			return errors.Wrapf(err, "keyframe %d", i)
		}

		property, err := ParseProperty(kf.Property)
		if err != nil {
			return errors.Wrapf(err, "keyframe %d", i)
		}

		values := make(map[Axis]float64, len(kf.Values))
		for name, v := range kf.Values {
			axis, err := ParseAxis(name)
			if err != nil {
				return errors.Wrapf(err, "keyframe %d", i)
			}
			values[axis] = v
		}

		if err := timeline.To(model, property, values, float64(kf.Section)); err != nil {
			return errors.Wrapf(err, "keyframe %d", i)
		}

	}

	// Starting values are whatever the models hold right now, which is their load-time placement.
	timeline.Build()

	b.binding = binding
	b.timeline = timeline
	b.scrubber = NewScrubber(binding.ScrubLag)

	// The first frame shows the current scroll position without easing in from the top.
	b.scrubber.SetTarget(b.timeAt(b.Page.Offset()))
	b.scrubber.Snap()
	b.timeline.Seek(b.scrubber.Playhead())

	return nil

}

func (b *Binder) timeAt(offset float64) float64 {
	return b.binding.Progress(offset) * b.timeline.Duration()
}

// Handle reacts to page events. Scroll events retarget the playhead; resize events recompute the binding's
// scroll range, since section bounds scale with the viewport.
func (b *Binder) Handle(event Event) {

	if b.state != BoundScrubbing {
		return
	}

	switch ev := event.(type) {

	case ScrollPositionChanged:
		b.scrubber.SetTarget(b.timeAt(ev.Offset))

	case ResizeEvent:
		binding, err := NewScrollBinding(b.Page, b.Animation.Trigger, b.Animation.ScrubLag)
		if err != nil {
			Logger().Warn("could not refresh scroll binding", "error", err.Error())
			return
		}
		b.binding = binding
		b.scrubber.SetTarget(b.timeAt(b.Page.Offset()))

	}

}

// Update advances the playhead by dt seconds and applies the timeline at the new time.
func (b *Binder) Update(dt float64) {
	if b.state != BoundScrubbing {
		return
	}
	b.timeline.Seek(b.scrubber.Update(dt))
}

// State returns the binder's current state.
func (b *Binder) State() BinderState {
	return b.state
}

// Binding returns the active scroll binding; it's the zero value until the binder is scrubbing.
func (b *Binder) Binding() ScrollBinding {
	return b.binding
}

// Timeline returns the installed timeline, or nil if none is installed.
func (b *Binder) Timeline() *Timeline {
	return b.timeline
}

// Progress returns the playhead's position as a fraction of the timeline, from 0 to 1.
func (b *Binder) Progress() float64 {
	if b.state != BoundScrubbing || b.timeline.Duration() == 0 {
		return 0
	}
	return b.scrubber.Playhead() / b.timeline.Duration()
}
