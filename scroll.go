package scrollscene

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultScrubLag is how long the playhead takes to catch up with the scroll position.
const DefaultScrubLag = 100 * time.Millisecond

// ScrollBinding maps a range of scroll offsets onto animation progress.
type ScrollBinding struct {
	Start, End float64       // Scroll offsets, in pixels, where progress is 0 and 1
	ScrubLag   time.Duration // How long progress takes to catch up with the scroll position
}

// NewScrollBinding binds progress to the named section of the page. Progress starts when the top of the section
// reaches the top of the viewport and ends when the bottom of the section reaches the bottom of the viewport.
func NewScrollBinding(page *Page, section string, scrubLag time.Duration) (ScrollBinding, error) {
	top, bottom, err := page.Bounds(section)
	if err != nil {
		return ScrollBinding{}, err
	}
	return ScrollBinding{
		Start:    top,
		End:      bottom - page.ViewportHeight(),
		ScrubLag: scrubLag,
	}, nil
}

// Progress returns how far through the binding the given scroll offset is, from 0 to 1.
func (b ScrollBinding) Progress(offset float64) float64 {
	if b.End <= b.Start {
		if offset < b.Start {
			return 0
		}
		return 1
	}
	return math.Min(math.Max((offset-b.Start)/(b.End-b.Start), 0), 1)
}

// Scrubber moves a playhead toward a target time, easing out over the scrub lag instead of jumping.
type Scrubber struct {
	lag      time.Duration
	playhead float64
	target   float64
	tween    *gween.Tween
}

// NewScrubber creates a new Scrubber. A lag of zero or less makes the playhead follow the target immediately.
func NewScrubber(lag time.Duration) *Scrubber {
	return &Scrubber{lag: lag}
}

// SetTarget sets the time the playhead should move to.
func (s *Scrubber) SetTarget(target float64) {

	if target == s.target && (s.tween != nil || s.playhead == target) {
		return
	}

	s.target = target

	if s.lag <= 0 {
		s.Snap()
		return
	}

	s.tween = gween.New(float32(s.playhead), float32(target), float32(s.lag.Seconds()), ease.OutCubic)

}

// Snap moves the playhead to the target right away.
func (s *Scrubber) Snap() {
	s.playhead = s.target
	s.tween = nil
}

// Update advances the playhead by dt seconds and returns it.
func (s *Scrubber) Update(dt float64) float64 {

	if s.tween == nil {
		return s.playhead
	}

	current, finished := s.tween.Update(float32(dt))
	if finished {
		s.Snap()
	} else {
		s.playhead = float64(current)
	}

	return s.playhead

}

// Playhead returns the playhead's current time.
func (s *Scrubber) Playhead() float64 {
	return s.playhead
}

// Target returns the time the playhead is moving to.
func (s *Scrubber) Target() float64 {
	return s.target
}

// Settled returns true if the playhead has reached its target.
func (s *Scrubber) Settled() bool {
	return s.tween == nil
}
