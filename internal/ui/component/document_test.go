package component_test

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
	"github.com/sulayman/folio/internal/content"
	"github.com/sulayman/folio/internal/page"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/ui/component"
)

const (
	rowHeight    = 20
	screenWidth  = 120
	viewportRows = 30
)

type revealRecorder struct {
	asked    map[string]int
	revealed map[string]bool
}

func (r *revealRecorder) Revealed(id string) bool {
	r.asked[id]++

	return r.revealed[id]
}

func newDocument() *component.DocumentModel {
	portfolio := content.Default()

	return component.NewDocumentModel(section.Default, portfolio,
		component.NewStatsModel(portfolio.Stats, time.Millisecond))
}

func TestDocumentLayoutAnchors(t *testing.T) {
	doc := newDocument()
	layout := doc.Relayout(screenWidth, viewportRows, rowHeight)

	require.Equal(t, float64(doc.Rows()*rowHeight), layout.Height)
	require.Len(t, layout.Anchors, section.Default.Len())

	var bottom float64
	for _, sect := range section.Default.All() {
		anchor, found := layout.Anchors[sect.ID]
		require.True(t, found, sect.ID)
		require.Equal(t, bottom, anchor.Top, "sections must be contiguous")
		require.Greater(t, anchor.Height(), 0.0)
		bottom = anchor.Bottom
	}

	require.Equal(t, layout.Height, bottom)

	home := layout.Anchors[section.Home]
	require.GreaterOrEqual(t, home.Height(), float64(viewportRows*rowHeight))
}

func TestDocumentLayoutElements(t *testing.T) {
	doc := newDocument()
	layout := doc.Relayout(screenWidth, viewportRows, rowHeight)

	for _, id := range []string{
		"about-heading", "about-bio", "about-stats",
		"skills-heading", "skills-card-0", "skills-card-2",
		"education-card-1", "experience-card-0", "services-card-0",
		"projects-intro", "projects-featured", "projects-card-0", "projects-more",
		"contact-heading", "contact-blurb", "contact-links",
	} {
		rect, found := layout.Elements[id]
		require.True(t, found, id)
		require.Greater(t, rect.Height(), 0.0, id)
	}

	// Every element sits inside the anchor of its section.
	for _, block := range doc.Blocks() {
		if block.ID == "" {
			continue
		}

		rect := layout.Elements[block.ID]
		anchor := layout.Anchors[block.Section]
		require.GreaterOrEqual(t, rect.Top, anchor.Top, block.ID)
		require.LessOrEqual(t, rect.Bottom, anchor.Bottom, block.ID)
	}

	_, heroAnimated := layout.Elements[component.ElementID(section.Home, "heading", -1)]
	require.False(t, heroAnimated)
}

func TestDocumentRender(t *testing.T) {
	doc := newDocument()
	doc.Relayout(screenWidth, viewportRows, rowHeight)

	recorder := &revealRecorder{asked: map[string]int{}, revealed: map[string]bool{"about-heading": true}}
	view := doc.Render(0, recorder)

	require.Equal(t, viewportRows, lipgloss.Height(view))
	require.Equal(t, 1, recorder.asked["about-heading"])
	require.Equal(t, 1, recorder.asked["contact-links"])

	// Scrolling past the end is clamped by the viewport.
	require.Equal(t, viewportRows, lipgloss.Height(doc.Render(doc.Rows()*2, recorder)))
}

func TestDocumentDrivesPage(t *testing.T) {
	doc := newDocument()
	layout := doc.Relayout(screenWidth, viewportRows, rowHeight)

	tuning := page.DefaultTuning()
	tuning.SmoothScroll = false

	state, err := page.New(section.Default, tuning)
	require.NoError(t, err)
	t.Cleanup(state.Close)

	state.SetLayout(layout, viewportRows*rowHeight)
	require.Equal(t, section.Home, state.Active())
	require.False(t, state.Revealed("contact-links"))

	require.True(t, state.Navigate(section.Skills))
	require.Equal(t, layout.Anchors[section.Skills].Top, state.Offset())
	require.Equal(t, section.Skills, state.Active())
	require.True(t, state.Scrolled())
	require.True(t, state.Revealed("skills-heading"))

	// The contact section is shorter than the probe distance from the bottom of the viewport so the
	// probe still lands in projects once the document is scrolled all the way down.
	state.ScrollTo(state.MaxOffset())
	require.Equal(t, section.Projects, state.Active())
	require.True(t, state.Revealed("contact-links"))
	// Reveals are permanent.
	require.True(t, state.Revealed("skills-heading"))
}

func TestElementID(t *testing.T) {
	require.Equal(t, "skills-card-2", component.ElementID(section.Skills, "card", 2))
	require.Equal(t, "about-heading", component.ElementID(section.About, "heading", -1))
}
