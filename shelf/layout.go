package shelf

import "fmt"

// Row is a left to right sequence of items sharing a baseline.
// Items of a row are expected to have the same height.
type Row struct {
	Name  string
	Items []Drawable
}

// Height returns the height of the first item, or 0 for an empty row.
func (r Row) Height() float64 {
	if len(r.Items) == 0 {
		return 0
	}
	_, h := r.Items[0].Size()
	return h
}

// Width returns the sum of the items width.
func (r Row) Width() float64 {
	var w float64
	for _, it := range r.Items {
		iw, _ := it.Size()
		w += iw
	}
	return w
}

// Layout stacks rows against a wall. Lengths are unscaled.
type Layout struct {
	Width, Height float64 // wall
	CabinetWidth  float64 // the wall is exposed beyond this abscissa
	Scale         float64
	Rows          []Row // bottom to top
}

// WallColor fills the part of the wall not covered by the cabinets.
const WallColor = "gray"

// Wall returns the wall outline and the exposed part of the wall, in drawing units.
func (l *Layout) Wall() (outline, exposed Rect) {
	w, h := l.Width/l.Scale, l.Height/l.Scale
	outline = Rect{Max: Point{w, h}}
	exposed = Rect{Min: Point{l.CabinetWidth / l.Scale, 0}, Max: Point{w, h}, Fill: WallColor}
	return outline, exposed
}

// Placement is a drawn item with its position in the layout.
type Placement struct {
	Row, Index int
	Item       Drawable
	Origin     Point    // lower left corner, in drawing units
	Local      Fragment // shapes relative to Origin
}

// Fragment returns the shapes of the item, translated to the layout origin.
func (p Placement) Fragment() Fragment {
	return p.Local.Translate(p.Origin.X, p.Origin.Y)
}

// Place draws every item, and computes its position:
// items of a row are placed left to right, starting at x = 0,
// and each row sits on top of the previous one.
// The first error aborts the layout.
func (l *Layout) Place() ([]Placement, error) {
	var (
		out []Placement
		y   float64
	)
	for i, row := range l.Rows {
		var x float64
		for j, item := range row.Items {
			frag, err := item.Draw(l.Scale)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s), item %d: %w", i, row.Name, j, err)
			}
			out = append(out, Placement{Row: i, Index: j, Item: item, Origin: Point{x, y}, Local: frag})
			w, _ := item.Size()
			x += w / l.Scale
		}
		y += row.Height() / l.Scale
	}
	return out, nil
}

// Draw sends the wall and every item, in absolute coordinates, to the driver `d`.
func (l *Layout) Draw(d Driver) error {
	placements, err := l.Place()
	if err != nil {
		return err
	}
	outline, exposed := l.Wall()
	d.Rect(outline)
	d.Rect(exposed)
	for _, p := range placements {
		p.Fragment().DrawTo(d)
	}
	return nil
}

// Bounds returns the extent of the whole drawing, in drawing units.
func (l *Layout) Bounds() (Bounds, error) {
	var bx boxer
	if err := l.Draw(&bx); err != nil {
		return Bounds{}, err
	}
	return bx.box, nil
}
