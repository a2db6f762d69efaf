package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sulayman/folio/internal/geometry"
)

func TestIntersectionRatio(t *testing.T) {
	root := geometry.Rect{Top: 0, Right: 100, Bottom: 800, Left: 0}

	for _, testCase := range []struct {
		name     string
		element  geometry.Rect
		expected float64
	}{
		{name: "inside", element: geometry.Rect{Top: 100, Right: 100, Bottom: 200}, expected: 1},
		{name: "above", element: geometry.Rect{Top: -300, Right: 100, Bottom: -100}, expected: 0},
		{name: "below", element: geometry.Rect{Top: 900, Right: 100, Bottom: 1000}, expected: 0},
		{name: "half", element: geometry.Rect{Top: 700, Right: 100, Bottom: 900}, expected: 0.5},
		{name: "tenth", element: geometry.Rect{Top: 780, Right: 100, Bottom: 980}, expected: 0.1},
		{name: "zero height inside", element: geometry.Rect{Top: 400, Right: 100, Bottom: 400}, expected: 1},
		{name: "zero height outside", element: geometry.Rect{Top: 900, Right: 100, Bottom: 900}, expected: 0},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			require.InDelta(t, testCase.expected, geometry.IntersectionRatio(testCase.element, root), 1e-9)
		})
	}
}

func TestRect(t *testing.T) {
	rect := geometry.Rect{Top: 10, Right: 50, Bottom: 30, Left: 10}
	require.InDelta(t, 800.0, rect.Area(), 1e-9)
	require.True(t, rect.ContainsY(10))
	require.True(t, rect.ContainsY(30))
	require.False(t, rect.ContainsY(31))

	moved := rect.Offset(-20)
	require.InDelta(t, -10.0, moved.Top, 1e-9)
	require.InDelta(t, 10.0, moved.Bottom, 1e-9)

	inverted := geometry.Rect{Top: 10, Bottom: 0}
	require.True(t, inverted.Empty())
}

func TestParseMargin(t *testing.T) {
	margin, err := geometry.ParseMargin("0px 0px -50px 0px")
	require.NoError(t, err)
	require.Equal(t, geometry.Px(-50), margin.Bottom)
	require.Equal(t, "0px 0px -50px 0px", margin.String())

	root := geometry.Rect{Top: 0, Right: 100, Bottom: 800}
	applied := margin.Apply(root)
	require.InDelta(t, 750.0, applied.Bottom, 1e-9)
	require.InDelta(t, 0.0, applied.Top, 1e-9)

	two, errTwo := geometry.ParseMargin("10% 0")
	require.NoError(t, errTwo)
	grown := two.Apply(root)
	require.InDelta(t, -80.0, grown.Top, 1e-9)
	require.InDelta(t, 880.0, grown.Bottom, 1e-9)

	three, errThree := geometry.ParseMargin("1px 2px 3px")
	require.NoError(t, errThree)
	require.Equal(t, geometry.Px(2), three.Left)

	empty, errEmpty := geometry.ParseMargin("")
	require.NoError(t, errEmpty)
	require.Equal(t, geometry.Margin{}, empty)

	for _, bad := range []string{"10", "1px 2px 3px 4px 5px", "abcpx", "5em"} {
		_, errBad := geometry.ParseMargin(bad)
		require.ErrorIs(t, errBad, geometry.ErrInvalidMargin, bad)
	}
}
