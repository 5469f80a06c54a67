// Provides the building blocks of a cabinet elevation:
// panels, doors and shelving units, and the layout
// stacking them in rows against a wall.
// Drawables are reduced to primitive shapes (see Fragment),
// which can then be consumed by painting drivers.
// See for example shelfdraw/shelftex or shelfdraw/shelfraster .
package shelf

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when a drawable is built
// with a value outside of its accepted set.
var ErrInvalidArgument = errors.New("shelf: invalid argument")

// Drawable is an item of a row.
// Width and height are expressed in length units (millimeters),
// and converted to drawing units by dividing by `scale`.
type Drawable interface {
	// Size returns the unscaled width and height.
	Size() (w, h float64)

	// Draw returns the shapes of the item, with (0,0) at its lower left corner.
	Draw(scale float64) (Fragment, error)
}

// assert interface conformance
var (
	_ Drawable = Panel{}
	_ Drawable = Door{}
	_ Drawable = Shelves{}
)

// Panel is a plain rectangle, optionally filled with a named color.
type Panel struct {
	Width, Height float64
	Fill          string // color name, empty for no filling
}

func (p Panel) Size() (float64, float64) { return p.Width, p.Height }

func (p Panel) Draw(scale float64) (Fragment, error) {
	return Fragment{
		Rect{Max: Point{p.Width / scale, p.Height / scale}, Fill: p.Fill},
	}, nil
}

// Side is the edge of a door holding its knob.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// default door parameters, in length units
const (
	DefaultDoorBorder     = 50
	DefaultDoorKnobRadius = 10
)

// Door is a framed rectangle with a round knob.
type Door struct {
	Width, Height float64
	Knob          Side
	Border        float64 // inset of the inner frame
	KnobRadius    float64
}

// NewDoor returns a door with the default border and knob radius.
func NewDoor(width, height float64, knob Side) Door {
	return Door{
		Width:      width,
		Height:     height,
		Knob:       knob,
		Border:     DefaultDoorBorder,
		KnobRadius: DefaultDoorKnobRadius,
	}
}

func (d Door) Size() (float64, float64) { return d.Width, d.Height }

// Draw returns the outer and inner frames and the knob.
// An error wrapping ErrInvalidArgument is returned if the knob side
// is neither Left nor Right.
func (d Door) Draw(scale float64) (Fragment, error) {
	w, h, i, r := d.Width/scale, d.Height/scale, d.Border/scale, d.KnobRadius/scale
	var knobX float64
	switch d.Knob {
	case Left:
		knobX = w - i/2
	case Right:
		knobX = i / 2
	default:
		return nil, fmt.Errorf("%w: door knob side %q", ErrInvalidArgument, string(d.Knob))
	}
	return Fragment{
		Rect{Max: Point{w, h}},
		Rect{Min: Point{i, i}, Max: Point{w - i, h - i}},
		Circle{Center: Point{knobX, h / 2}, Radius: r},
	}, nil
}

// Closed selects the sides of a shelving unit closed by a panel.
type Closed uint8

const (
	ClosedNone Closed = iota
	ClosedLeft
	ClosedRight
	ClosedBoth
)

func (c Closed) String() string {
	switch c {
	case ClosedNone:
		return "none"
	case ClosedLeft:
		return "left"
	case ClosedRight:
		return "right"
	case ClosedBoth:
		return "both"
	default:
		return "<unknown Closed>"
	}
}

func (c Closed) left() bool  { return c == ClosedLeft || c == ClosedBoth }
func (c Closed) right() bool { return c == ClosedRight || c == ClosedBoth }

// Spacing holds the distances between consecutive shelves.
// Values are used in order, and the last one is repeated once
// the sequence is exhausted.
type Spacing []float64

// Every returns a constant spacing.
func Every(v float64) Spacing { return Spacing{v} }

// at returns the i-th spacing, clamped to the last value.
func (s Spacing) at(i int) float64 {
	if i >= len(s) {
		i = len(s) - 1
	}
	return s[i]
}

// Shelves is a shelving unit: two vertical rails, optional
// closing sides and horizontal shelves.
type Shelves struct {
	Width, Height float64
	Spacing       Spacing
	Thickness     float64 // thickness of the rails and the shelves
	Closed        Closed
}

func (s Shelves) Size() (float64, float64) { return s.Width, s.Height }

// round2 rounds to 2 decimals, ties to even
func round2(v float64) float64 { return math.RoundToEven(v*100) / 100 }

// Cursors returns the heights (in drawing units) of the top face
// of every shelf, from the bottom up.
// The first shelf sits at the first spacing value, and the following ones
// are added while their top face stays strictly below the unit height.
func (s Shelves) Cursors(scale float64) []float64 {
	h := round2(s.Height / scale)
	if len(s.Spacing) == 0 {
		return nil
	}
	var out []float64
	ch := round2(s.Spacing[0] / scale)
	if ch <= 0 {
		return nil
	}
	for count := 0; ch < h; {
		out = append(out, ch)
		count++
		step := round2(s.Spacing.at(count) / scale)
		if step <= 0 { // would never reach the top
			break
		}
		ch += step
	}
	return out
}

// Draw returns the carcass and the shelves. Dimensions are rounded
// to 2 decimals.
func (s Shelves) Draw(scale float64) (Fragment, error) {
	w, h, st := round2(s.Width/scale), round2(s.Height/scale), round2(s.Thickness/scale)

	out := Fragment{
		Line{From: Point{st, 0}, To: Point{st, h}},
		Line{From: Point{w - st, 0}, To: Point{w - st, h}},
	}
	if s.Closed.left() {
		out = append(out, Line{From: Point{w, 0}, To: Point{w, h}})
	}
	if s.Closed.right() {
		out = append(out, Line{From: Point{0, 0}, To: Point{0, h}})
	}

	for _, ch := range s.Cursors(scale) {
		out = append(out, Rect{
			Min: Point{st, round2(ch - st)},
			Max: Point{round2(w - st), round2(ch)},
		})
	}
	return out, nil
}
