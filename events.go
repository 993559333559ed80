package scrollscene

// Event is something that happened to the presentation, handled in arrival order on a single goroutine.
type Event interface {
	isEvent()
}

// ResizeEvent signals that the container may have changed size.
type ResizeEvent struct{}

// ScrollPositionChanged signals that the page was scrolled to Offset.
type ScrollPositionChanged struct {
	Offset float64
}

// AssetsLoaded signals that every asset request has settled.
type AssetsLoaded struct {
	Registry *Registry
	Err      error
}

func (ResizeEvent) isEvent()           {}
func (ScrollPositionChanged) isEvent() {}
func (AssetsLoaded) isEvent()          {}
