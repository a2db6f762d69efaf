package reveal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sulayman/folio/internal/geometry"
	"github.com/sulayman/folio/internal/reveal"
)

var viewport = geometry.Rect{Top: 0, Right: 100, Bottom: 800}

// column lays out elements in document coordinates and reports them relative to a scroll offset.
type column struct {
	elements map[string]geometry.Rect
	offset   float64
}

func (c *column) locate(id string) (geometry.Rect, bool) {
	rect, found := c.elements[id]
	if !found {
		return geometry.Rect{}, false
	}

	return rect.Offset(-c.offset), true
}

func newAnimator(t *testing.T, opts reveal.Options) (*reveal.Observer, *reveal.Animator) {
	t.Helper()

	observer, err := reveal.NewObserver(opts)
	require.NoError(t, err)

	return observer, reveal.NewAnimator(observer)
}

func TestOptionsValidate(t *testing.T) {
	_, err := reveal.NewObserver(reveal.Options{Threshold: 1.5})
	require.ErrorIs(t, err, reveal.ErrInvalidThreshold)

	_, errMargin := reveal.NewObserver(reveal.Options{Threshold: 0.1, RootMargin: "50"})
	require.ErrorIs(t, errMargin, geometry.ErrInvalidMargin)

	margin, errDefault := reveal.DefaultOptions().Validate()
	require.NoError(t, errDefault)
	require.Equal(t, geometry.Px(-50), margin.Bottom)
}

func TestThresholdBoundary(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		ratio    float64
		revealed bool
	}{
		{name: "at threshold", ratio: 0.1, revealed: true},
		{name: "below threshold", ratio: 0.1 - 1e-9, revealed: false},
		{name: "above threshold", ratio: 0.5, revealed: true},
		{name: "hidden", ratio: 0, revealed: false},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			_, animator := newAnimator(t, reveal.DefaultOptions())
			animator.Register("a")

			animator.Handle(reveal.Batch{{ID: "a", Ratio: testCase.ratio, Intersecting: testCase.ratio > 0}})
			require.Equal(t, testCase.revealed, animator.Revealed("a"))
		})
	}
}

func TestThresholdBoundaryGeometry(t *testing.T) {
	observer, animator := newAnimator(t, reveal.Options{Threshold: 0.1})
	animator.Register("exact", "short")

	layout := &column{elements: map[string]geometry.Rect{
		// 20 of 200 rows inside the viewport.
		"exact": {Top: 780, Bottom: 980, Right: 100},
		// 19 of 200 rows inside the viewport.
		"short": {Top: 781, Bottom: 981, Right: 100},
	}}

	batch := observer.Check(viewport, layout.locate)
	require.Len(t, batch, 2)
	require.True(t, animator.Revealed("exact"))
	require.False(t, animator.Revealed("short"))
}

func TestRootMarginBiasesBottomEdge(t *testing.T) {
	observer, animator := newAnimator(t, reveal.DefaultOptions())
	animator.Register("block")

	// Fully inside the raw viewport but entirely within the 50px bottom inset.
	layout := &column{elements: map[string]geometry.Rect{"block": {Top: 760, Bottom: 800, Right: 100}}}
	observer.Check(viewport, layout.locate)
	require.False(t, animator.Revealed("block"))

	layout.offset = 40
	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("block"))
}

func TestIndependentReveals(t *testing.T) {
	observer, animator := newAnimator(t, reveal.DefaultOptions())
	animator.Register("A", "B", "C")

	layout := &column{elements: map[string]geometry.Rect{
		"A": {Top: 600, Bottom: 800, Right: 100},
		"B": {Top: 1200, Bottom: 1400, Right: 100},
		"C": {Top: 1800, Bottom: 2000, Right: 100},
	}}

	for _, id := range []string{"A", "B", "C"} {
		require.False(t, animator.Revealed(id))
	}

	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("A"))
	require.False(t, animator.Revealed("B"))
	require.False(t, animator.Revealed("C"))

	layout.offset = 600
	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("B"))
	require.False(t, animator.Revealed("C"))

	layout.offset = 1200
	observer.Check(viewport, layout.locate)
	require.Equal(t, []string{"A", "B", "C"}, animator.RevealedIDs())
}

func TestMonotonicAndUnobserved(t *testing.T) {
	observer, animator := newAnimator(t, reveal.DefaultOptions())
	animator.Register("a")

	layout := &column{elements: map[string]geometry.Rect{"a": {Top: 100, Bottom: 300, Right: 100}}}
	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("a"))
	require.False(t, observer.Observing("a"))

	var delivered []reveal.Batch
	observer.Subscribe(func(batch reveal.Batch) { delivered = append(delivered, batch) })

	// Scrolled completely out of view, no further notifications and no state change.
	layout.offset = 5000
	observer.Check(viewport, layout.locate)
	require.Empty(t, delivered)
	require.True(t, animator.Revealed("a"))
}

func TestIdempotentDelivery(t *testing.T) {
	_, animator := newAnimator(t, reveal.DefaultOptions())
	animator.Register("a", "b")

	batch := reveal.Batch{{ID: "a", Ratio: 1, Intersecting: true, Visible: true}}
	require.Equal(t, []string{"a"}, animator.Handle(batch))
	before := animator.Snapshot()

	require.Empty(t, animator.Handle(batch))
	require.Empty(t, animator.Handle(reveal.Batch{{ID: "a", Ratio: 0}}))
	require.Equal(t, before, animator.Snapshot())

	revealed, total := animator.Count()
	require.Equal(t, 1, revealed)
	require.Equal(t, 2, total)
}

func TestUnregisteredIgnored(t *testing.T) {
	_, animator := newAnimator(t, reveal.DefaultOptions())

	require.Empty(t, animator.Handle(reveal.Batch{{ID: "ghost", Ratio: 1, Intersecting: true}}))
	require.False(t, animator.Registered("ghost"))
	require.False(t, animator.Revealed("ghost"))
}

func TestLateRegistration(t *testing.T) {
	observer, animator := newAnimator(t, reveal.DefaultOptions())
	layout := &column{elements: map[string]geometry.Rect{
		"early": {Top: 100, Bottom: 200, Right: 100},
		"late":  {Top: 300, Bottom: 400, Right: 100},
	}}

	animator.Register("early")
	observer.Check(viewport, layout.locate)
	require.False(t, animator.Registered("late"))

	animator.Register("late", "early")
	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("late"))
}

func TestObserverReportsCrossings(t *testing.T) {
	observer, err := reveal.NewObserver(reveal.DefaultOptions())
	require.NoError(t, err)

	observer.Observe("a")
	observer.Observe("a")
	require.Equal(t, 1, observer.Len())

	layout := &column{elements: map[string]geometry.Rect{"a": {Top: 1000, Bottom: 1200, Right: 100}}}

	first := observer.Check(viewport, layout.locate)
	require.Len(t, first, 1)
	require.False(t, first[0].Visible)

	require.Empty(t, observer.Check(viewport, layout.locate))

	layout.offset = 500
	crossed := observer.Check(viewport, layout.locate)
	require.Len(t, crossed, 1)
	require.True(t, crossed[0].Visible)

	layout.offset = 0
	back := observer.Check(viewport, layout.locate)
	require.Len(t, back, 1)
	require.False(t, back[0].Visible)
}

func TestMissingElementsSkipped(t *testing.T) {
	observer, animator := newAnimator(t, reveal.DefaultOptions())
	animator.Register("absent")

	layout := &column{elements: map[string]geometry.Rect{}}
	require.Empty(t, observer.Check(viewport, layout.locate))
	require.True(t, observer.Observing("absent"))

	layout.elements["absent"] = geometry.Rect{Top: 0, Bottom: 100, Right: 100}
	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("absent"))
}

func TestCloseStopsDelivery(t *testing.T) {
	observer, animator := newAnimator(t, reveal.DefaultOptions())
	animator.Register("a", "b")

	layout := &column{elements: map[string]geometry.Rect{
		"a": {Top: 100, Bottom: 200, Right: 100},
		"b": {Top: 2000, Bottom: 2200, Right: 100},
	}}
	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("a"))

	animator.Close()
	animator.Close()

	layout.offset = 1800
	require.Empty(t, observer.Check(viewport, layout.locate))
	require.False(t, animator.Revealed("b"))
	require.True(t, animator.Revealed("a"))
	require.Zero(t, observer.Len())

	animator.Register("c")
	require.False(t, animator.Registered("c"))
}

func TestConfigureReportsAgain(t *testing.T) {
	observer, animator := newAnimator(t, reveal.DefaultOptions())
	animator.Register("a")

	// 25% visible, not enough for a 0.5 threshold.
	layout := &column{elements: map[string]geometry.Rect{"a": {Top: 700, Bottom: 1100, Right: 100}}}
	require.NoError(t, observer.Configure(reveal.Options{Threshold: 0.5}))
	observer.Check(viewport, layout.locate)
	require.False(t, animator.Revealed("a"))

	require.NoError(t, observer.Configure(reveal.Options{Threshold: 0.2}))
	observer.Check(viewport, layout.locate)
	require.True(t, animator.Revealed("a"))

	require.ErrorIs(t, observer.Configure(reveal.Options{Threshold: -1}), reveal.ErrInvalidThreshold)
}
