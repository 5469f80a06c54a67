package shelf

import (
	"errors"
	"testing"
)

// records the shapes sent by a layout
type recorder struct {
	rects   []Rect
	lines   []Line
	circles []Circle
}

func (r *recorder) Rect(s Rect)     { r.rects = append(r.rects, s) }
func (r *recorder) Line(s Line)     { r.lines = append(r.lines, s) }
func (r *recorder) Circle(s Circle) { r.circles = append(r.circles, s) }

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if h := cfg.ShelvingHeight(); h != 1630 {
		t.Errorf("unexpected shelving height %g", h)
	}
	if w := cfg.CabinetWidth(); w != 3100 {
		t.Errorf("unexpected cabinet width %g", w)
	}

	rows := cfg.Rows()
	names := []string{"skirting", "base", "counter", "top", "crown"}
	if len(rows) != len(names) {
		t.Fatalf("expected %d rows, got %d", len(names), len(rows))
	}
	for i, row := range rows {
		if row.Name != names[i] {
			t.Errorf("row %d: expected %s, got %s", i, names[i], row.Name)
		}
		for _, it := range row.Items {
			if _, h := it.Size(); h != row.Height() {
				t.Errorf("row %s is not homogeneous", row.Name)
			}
		}
	}
	if w := rows[0].Width(); w != 3120 {
		t.Errorf("unexpected skirting width %g", w)
	}
	if w := rows[3].Width(); w != 3100 {
		t.Errorf("unexpected top width %g", w)
	}
}

func TestPlace(t *testing.T) {
	l := DefaultConfig().Layout()
	placements, err := l.Place()
	if err != nil {
		t.Fatal(err)
	}
	if len(placements) != 1+7+1+5+1 {
		t.Fatalf("unexpected number of items %d", len(placements))
	}

	// rows start at x = 0 and stack upward
	rowY := map[int]float64{0: 0, 1: 1.5, 2: 8.7, 3: 9.2, 4: 25.5}
	for _, p := range placements {
		if p.Index == 0 && p.Origin.X != 0 {
			t.Errorf("row %d does not start at 0", p.Row)
		}
		if !near(p.Origin.Y, rowY[p.Row]) {
			t.Errorf("row %d: expected y = %g, got %g", p.Row, rowY[p.Row], p.Origin.Y)
		}
	}

	// last door of the base row
	last := placements[7]
	if last.Row != 1 || last.Index != 6 || !near(last.Origin.X, 25) {
		t.Errorf("unexpected placement %+v", last)
	}
	b := last.Fragment().Bounds()
	if !near(b.Min.X, 25) || !near(b.Max.X, 31) || !near(b.Min.Y, 1.5) || !near(b.Max.Y, 8.7) {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestLayoutDraw(t *testing.T) {
	l := DefaultConfig().Layout()
	var rec recorder
	if err := l.Draw(&rec); err != nil {
		t.Fatal(err)
	}
	wall, exposed := rec.rects[0], rec.rects[1]
	if !near(wall.Max.X, 32.2) || !near(wall.Max.Y, 27) || wall.Fill != "" {
		t.Errorf("unexpected wall %v", wall)
	}
	if !near(exposed.Min.X, 31) || exposed.Fill != WallColor {
		t.Errorf("unexpected exposed wall %v", exposed)
	}
	// the wall boundary is the sum of the base row widths
	if base := l.Rows[1].Width() / l.Scale; !near(exposed.Min.X, base) {
		t.Errorf("exposed wall starts at %g, base row is %g wide", exposed.Min.X, base)
	}
	if len(rec.circles) != 6 {
		t.Errorf("expected one knob per door, got %d", len(rec.circles))
	}

	b, err := l.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if !near(b.Width(), 32.2) || !near(b.Height(), 27) {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestLayoutError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDoors = append(cfg.BaseDoors, DoorSpec{Width: 300, Knob: "middle"})
	l := cfg.Layout()
	if _, err := l.Place(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
	var rec recorder
	if err := l.Draw(&rec); err == nil {
		t.Error("expected an error")
	}
	if len(rec.rects) != 0 {
		t.Error("expected no partial output")
	}
}
