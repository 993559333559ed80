package scrollscene

import (
	"math"

	"github.com/pkg/errors"
)

// Section is a named block of the page. Its height is given in viewport heights, so a section with a height of 2
// takes two screens to scroll through.
type Section struct {
	Name   string
	Height float64
}

// Page is a vertical stack of sections that can be scrolled through one viewport at a time.
type Page struct {
	sections       []Section
	viewportHeight float64
	offset         float64
}

// NewPage creates a new Page made of the given sections, top to bottom.
func NewPage(sections ...Section) *Page {
	return &Page{sections: append([]Section(nil), sections...)}
}

// Sections returns the page's sections, top to bottom.
func (page *Page) Sections() []Section {
	return append([]Section(nil), page.sections...)
}

// SetViewportHeight sets the height of the visible area in pixels, keeping the scroll offset in range.
func (page *Page) SetViewportHeight(height float64) {
	page.viewportHeight = math.Max(height, 0)
	page.offset = page.clamp(page.offset)
}

// ViewportHeight returns the height of the visible area in pixels.
func (page *Page) ViewportHeight() float64 {
	return page.viewportHeight
}

// Height returns the total height of the page in pixels.
func (page *Page) Height() float64 {
	total := 0.0
	for _, s := range page.sections {
		total += s.Height
	}
	return total * page.viewportHeight
}

// MaxOffset returns the furthest the page can be scrolled.
func (page *Page) MaxOffset() float64 {
	return math.Max(page.Height()-page.viewportHeight, 0)
}

// Offset returns how far the page is scrolled from the top, in pixels.
func (page *Page) Offset() float64 {
	return page.offset
}

// ScrollTo scrolls to the given offset, clamped to the page, and returns the new offset.
func (page *Page) ScrollTo(offset float64) float64 {
	page.offset = page.clamp(offset)
	return page.offset
}

// ScrollBy scrolls by delta pixels (positive is down) and returns the new offset.
func (page *Page) ScrollBy(delta float64) float64 {
	return page.ScrollTo(page.offset + delta)
}

func (page *Page) clamp(offset float64) float64 {
	return math.Min(math.Max(offset, 0), page.MaxOffset())
}

// Bounds returns the top and bottom of the named section, in pixels from the top of the page.
func (page *Page) Bounds(name string) (top, bottom float64, err error) {
	for _, s := range page.sections {
		height := s.Height * page.viewportHeight
		if s.Name == name {
			return top, top + height, nil
		}
		top += height
	}
	return 0, 0, errors.Wrapf(ErrNotFound, "section %q", name)
}
