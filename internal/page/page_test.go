package page_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sulayman/folio/internal/geometry"
	"github.com/sulayman/folio/internal/page"
	"github.com/sulayman/folio/internal/reveal"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/tracker"
)

const viewportHeight = 800

var threeSections = section.MustNew(
	section.Section{ID: section.Home, Label: "Home"},
	section.Section{ID: section.About, Label: "About"},
	section.Section{ID: section.Skills, Label: "Skills"},
)

func threeSectionLayout() page.Layout {
	return page.Layout{
		Width:  100,
		Height: 2400,
		Anchors: map[section.ID]geometry.Rect{
			section.Home:   {Top: 0, Bottom: 800, Right: 100},
			section.About:  {Top: 800, Bottom: 1600, Right: 100},
			section.Skills: {Top: 1600, Bottom: 2400, Right: 100},
		},
		Elements: map[string]geometry.Rect{
			"about-heading":  {Top: 820, Bottom: 880, Right: 100},
			"about-body":     {Top: 900, Bottom: 1300, Right: 100},
			"skills-heading": {Top: 1620, Bottom: 1680, Right: 100},
		},
	}
}

func newPage(t *testing.T, tuning page.Tuning) *page.Page {
	t.Helper()

	doc, err := page.New(threeSections, tuning)
	require.NoError(t, err)
	doc.SetLayout(threeSectionLayout(), viewportHeight)
	t.Cleanup(doc.Close)

	return doc
}

func settle(t *testing.T, doc *page.Page) {
	t.Helper()

	for range 10_000 {
		if !doc.Tick() {
			return
		}
	}

	t.Fatal("navigation did not settle")
}

func TestNewInvalidTuning(t *testing.T) {
	tuning := page.DefaultTuning()
	tuning.FPS = 0
	_, err := page.New(threeSections, tuning)
	require.ErrorIs(t, err, page.ErrInvalidTuning)

	tuning = page.DefaultTuning()
	tuning.Reveal.Threshold = 2
	_, errReveal := page.New(threeSections, tuning)
	require.ErrorIs(t, errReveal, page.ErrInvalidTuning)
	require.ErrorIs(t, errReveal, reveal.ErrInvalidThreshold)
}

func TestScrollScenario(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	require.Equal(t, section.Home, doc.Active())
	require.False(t, doc.Scrolled())

	doc.ScrollTo(60)
	require.True(t, doc.Scrolled())
	require.Equal(t, section.Home, doc.Active())

	doc.ScrollTo(750)
	require.Equal(t, section.About, doc.Active())

	doc.ScrollTo(0)
	require.Equal(t, section.Home, doc.Active())
	require.False(t, doc.Scrolled())
}

func TestScrollClamped(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	doc.ScrollTo(-100)
	require.InDelta(t, 0.0, doc.Offset(), 1e-9)

	doc.ScrollBy(10_000)
	require.InDelta(t, 1600.0, doc.Offset(), 1e-9)
	require.InDelta(t, 1.0, doc.Progress(), 1e-9)
	require.Equal(t, section.Skills, doc.Active())
}

func TestNavigateSmooth(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	require.True(t, doc.Navigate(section.Skills))
	require.True(t, doc.Animating())

	doc.Tick()
	require.Greater(t, doc.Offset(), 0.0)
	require.Less(t, doc.Offset(), 1600.0)

	settle(t, doc)
	require.False(t, doc.Animating())
	require.InDelta(t, 1600.0, doc.Offset(), 1e-9)

	bounds, found := doc.Bounds(section.Skills)
	require.True(t, found)
	require.InDelta(t, 0.0, bounds.Top, 1e-9)
	require.Equal(t, section.Skills, doc.Active())
}

func TestNavigateImmediate(t *testing.T) {
	tuning := page.DefaultTuning()
	tuning.SmoothScroll = false
	doc := newPage(t, tuning)

	require.True(t, doc.Navigate(section.About))
	require.False(t, doc.Animating())
	require.InDelta(t, 800.0, doc.Offset(), 1e-9)
	require.Equal(t, section.About, doc.Active())
}

func TestNavigateMissing(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())
	doc.ScrollTo(750)
	before := doc.State()

	require.False(t, doc.Navigate("nonexistent"))
	require.False(t, doc.Animating())
	require.InDelta(t, 750.0, doc.Offset(), 1e-9)
	require.Equal(t, before, doc.State())
}

func TestScrollCancelsNavigation(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	require.True(t, doc.Navigate(section.Skills))
	doc.Tick()
	doc.ScrollTo(100)

	require.False(t, doc.Animating())
	require.False(t, doc.Tick())
	require.InDelta(t, 100.0, doc.Offset(), 1e-9)
}

func TestRevealOnScroll(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	revealed, total := doc.RevealCount()
	require.Equal(t, 0, revealed)
	require.Equal(t, 3, total)

	// about-heading starts 20px below the fold, half of it clears the 50px bottom margin at 100.
	doc.ScrollTo(100)
	require.True(t, doc.Revealed("about-heading"))
	require.False(t, doc.Revealed("about-body"))
	require.False(t, doc.Revealed("skills-heading"))

	doc.ScrollTo(600)
	require.True(t, doc.Revealed("about-body"))

	doc.ScrollTo(0)
	require.True(t, doc.Revealed("about-heading"))
	require.True(t, doc.Revealed("about-body"))
	require.False(t, doc.Revealed("skills-heading"))
}

func TestLateElements(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	layout := threeSectionLayout()
	layout.Elements["hero"] = geometry.Rect{Top: 100, Bottom: 300, Right: 100}
	doc.SetLayout(layout, viewportHeight)

	require.True(t, doc.Revealed("hero"))
	_, total := doc.RevealCount()
	require.Equal(t, 4, total)
}

func TestStateSubscription(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	var states []tracker.State
	token := doc.SubscribeState(func(s tracker.State) { states = append(states, s) })

	doc.ScrollTo(750)
	require.Equal(t, []tracker.State{{Active: section.About, Scrolled: true}}, states)

	require.True(t, doc.UnsubscribeState(token))
	doc.ScrollTo(0)
	require.Len(t, states, 1)
}

func TestConfigure(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	tuning := page.DefaultTuning()
	tuning.Tracker.ChromeThreshold = 1000
	tuning.SmoothScroll = false
	require.NoError(t, doc.Configure(tuning))

	doc.ScrollTo(750)
	require.False(t, doc.Scrolled())

	require.True(t, doc.Navigate(section.Skills))
	require.InDelta(t, 1600.0, doc.Offset(), 1e-9)

	tuning.Reveal.RootMargin = "bad"
	require.ErrorIs(t, doc.Configure(tuning), page.ErrInvalidTuning)
}

func TestCloseStopsNotifications(t *testing.T) {
	doc := newPage(t, page.DefaultTuning())

	doc.ScrollTo(200)
	require.True(t, doc.Revealed("about-heading"))

	doc.Close()
	doc.Close()

	doc.ScrollTo(1600)
	require.InDelta(t, 1600.0, doc.Offset(), 1e-9)
	require.Equal(t, section.Home, doc.Active())
	require.False(t, doc.Revealed("skills-heading"))
	require.True(t, doc.Revealed("about-heading"))
	require.False(t, doc.Navigate(section.About))
}

func TestShortDocument(t *testing.T) {
	doc, err := page.New(threeSections, page.DefaultTuning())
	require.NoError(t, err)
	defer doc.Close()

	doc.SetLayout(page.Layout{
		Width:   100,
		Height:  400,
		Anchors: map[section.ID]geometry.Rect{section.Home: {Top: 0, Bottom: 400, Right: 100}},
	}, viewportHeight)

	doc.ScrollBy(500)
	require.InDelta(t, 0.0, doc.Offset(), 1e-9)
	require.InDelta(t, 1.0, doc.Progress(), 1e-9)
	require.True(t, doc.Navigate(section.Home))
	require.False(t, doc.Tick())
}
