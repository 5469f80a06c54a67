package shelf

import "math"

// This file defines the primitive shapes a Drawable is reduced to.

// Point is a position in drawing units.
type Point struct{ X, Y float64 }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Driver knows how to paint the primitive shapes.
// Coordinates are already translated to the drawing origin
// when they reach the Driver.
type Driver interface {
	Rect(r Rect)
	Line(l Line)
	Circle(c Circle)
}

// Shape groups the primitive drawing commands.
type Shape interface {
	// send itself to the driver `d`
	drawTo(d Driver)
	// returns a copy moved by (dx, dy)
	translate(dx, dy float64) Shape
}

// Rect is an axis aligned rectangle. An empty Fill only strokes the border.
type Rect struct {
	Min, Max Point
	Fill     string
}

// Line is a straight segment.
type Line struct{ From, To Point }

// Circle is stroked, never filled.
type Circle struct {
	Center Point
	Radius float64
}

func (r Rect) drawTo(d Driver)   { d.Rect(r) }
func (l Line) drawTo(d Driver)   { d.Line(l) }
func (c Circle) drawTo(d Driver) { d.Circle(c) }

func (r Rect) translate(dx, dy float64) Shape {
	return Rect{Min: r.Min.Add(dx, dy), Max: r.Max.Add(dx, dy), Fill: r.Fill}
}

func (l Line) translate(dx, dy float64) Shape {
	return Line{From: l.From.Add(dx, dy), To: l.To.Add(dx, dy)}
}

func (c Circle) translate(dx, dy float64) Shape {
	return Circle{Center: c.Center.Add(dx, dy), Radius: c.Radius}
}

// Fragment is the output of a Drawable: a sequence of shapes
// expressed relatively to the lower left corner of the item.
type Fragment []Shape

// Translate returns a new fragment with every shape moved by (dx, dy).
func (f Fragment) Translate(dx, dy float64) Fragment {
	out := make(Fragment, len(f))
	for i, s := range f {
		out[i] = s.translate(dx, dy)
	}
	return out
}

// DrawTo sends every shape of the fragment to `d`, in order.
func (f Fragment) DrawTo(d Driver) {
	for _, s := range f {
		s.drawTo(d)
	}
}

// Bounds is an axis aligned box, in drawing units.
type Bounds struct{ Min, Max Point }

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// boxer is used to compute the extent of the shapes
type boxer struct {
	box     Bounds
	started bool
}

func (bx *boxer) add(minX, minY, maxX, maxY float64) {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	b := Bounds{Min: Point{minX, minY}, Max: Point{maxX, maxY}}
	if !bx.started {
		bx.box, bx.started = b, true
		return
	}
	bx.box = Bounds{
		Min: Point{math.Min(bx.box.Min.X, b.Min.X), math.Min(bx.box.Min.Y, b.Min.Y)},
		Max: Point{math.Max(bx.box.Max.X, b.Max.X), math.Max(bx.box.Max.Y, b.Max.Y)},
	}
}

func (bx *boxer) Rect(r Rect) { bx.add(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y) }
func (bx *boxer) Line(l Line) { bx.add(l.From.X, l.From.Y, l.To.X, l.To.Y) }
func (bx *boxer) Circle(c Circle) {
	bx.add(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Center.X+c.Radius, c.Center.Y+c.Radius)
}

// Bounds returns the extent of the fragment. Degenerate shapes
// such as vertical lines still contribute their end points.
func (f Fragment) Bounds() Bounds {
	var bx boxer
	f.DrawTo(&bx)
	return bx.box
}
