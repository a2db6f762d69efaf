package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMargin = errors.New("invalid margin")

// Length is a single margin component, either absolute or a percentage of the root dimension
// along the same axis.
type Length struct {
	Value   float64
	Percent bool
}

func Px(value float64) Length {
	return Length{Value: value}
}

func (l Length) resolve(base float64) float64 {
	if l.Percent {
		return base * l.Value / 100
	}

	return l.Value
}

func (l Length) String() string {
	unit := "px"
	if l.Percent {
		unit = "%"
	}

	return strconv.FormatFloat(l.Value, 'f', -1, 64) + unit
}

// Margin grows (positive) or shrinks (negative) a root rect on each side before intersections
// are computed.
type Margin struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// ParseMargin parses CSS margin shorthand with one to four components, eg: "0px 0px -50px 0px".
// A bare "0" is accepted, every other value needs a px or % unit.
func ParseMargin(value string) (Margin, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return Margin{}, nil
	}

	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("%w: too many components in %q", ErrInvalidMargin, value)
	}

	lengths := make([]Length, len(fields))
	for idx, field := range fields {
		length, err := parseLength(field)
		if err != nil {
			return Margin{}, err
		}

		lengths[idx] = length
	}

	switch len(lengths) {
	case 1:
		return Margin{Top: lengths[0], Right: lengths[0], Bottom: lengths[0], Left: lengths[0]}, nil
	case 2:
		return Margin{Top: lengths[0], Right: lengths[1], Bottom: lengths[0], Left: lengths[1]}, nil
	case 3:
		return Margin{Top: lengths[0], Right: lengths[1], Bottom: lengths[2], Left: lengths[1]}, nil
	default:
		return Margin{Top: lengths[0], Right: lengths[1], Bottom: lengths[2], Left: lengths[3]}, nil
	}
}

func parseLength(field string) (Length, error) {
	var (
		number  string
		percent bool
	)

	switch {
	case strings.HasSuffix(field, "px"):
		number = strings.TrimSuffix(field, "px")
	case strings.HasSuffix(field, "%"):
		number = strings.TrimSuffix(field, "%")
		percent = true
	case field == "0":
		return Length{}, nil
	default:
		return Length{}, fmt.Errorf("%w: missing unit in %q", ErrInvalidMargin, field)
	}

	value, errParse := strconv.ParseFloat(number, 64)
	if errParse != nil {
		return Length{}, errors.Join(errParse, ErrInvalidMargin)
	}

	return Length{Value: value, Percent: percent}, nil
}

// Apply returns root expanded by the margin. Percentages resolve against the root height for the
// vertical sides and the root width for the horizontal sides.
func (m Margin) Apply(root Rect) Rect {
	width, height := root.Width(), root.Height()

	return Rect{
		Top:    root.Top - m.Top.resolve(height),
		Right:  root.Right + m.Right.resolve(width),
		Bottom: root.Bottom + m.Bottom.resolve(height),
		Left:   root.Left - m.Left.resolve(width),
	}
}

func (m Margin) String() string {
	return strings.Join([]string{m.Top.String(), m.Right.String(), m.Bottom.String(), m.Left.String()}, " ")
}
