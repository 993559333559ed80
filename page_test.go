package scrollscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPage() *Page {
	page := NewPage(Section{Name: "intro", Height: 1}, Section{Name: "page1", Height: 4})
	page.SetViewportHeight(100)
	return page
}

func TestPageLayout(t *testing.T) {

	page := newTestPage()

	assert.Equal(t, 500.0, page.Height())
	assert.Equal(t, 400.0, page.MaxOffset())

	top, bottom, err := page.Bounds("page1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, top)
	assert.Equal(t, 500.0, bottom)

	_, _, err = page.Bounds("nope")
	assert.ErrorIs(t, err, ErrNotFound)

}

func TestPageScrollClamps(t *testing.T) {

	page := newTestPage()

	assert.Equal(t, 150.0, page.ScrollBy(150))
	assert.Equal(t, 400.0, page.ScrollBy(1000))
	assert.Equal(t, 0.0, page.ScrollTo(-20))

	page.ScrollTo(400)
	page.SetViewportHeight(50)
	assert.Equal(t, 200.0, page.MaxOffset())
	assert.Equal(t, 200.0, page.Offset(), "shrinking the viewport keeps the offset on the page")

}

func TestPageWithoutViewport(t *testing.T) {
	page := NewPage(Section{Name: "page1", Height: 4})
	assert.Zero(t, page.Height())
	assert.Zero(t, page.ScrollBy(100))
}
