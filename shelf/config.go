package shelf

// DoorSpec describes one door of the base cabinets.
type DoorSpec struct {
	Width float64
	Knob  Side
}

// UnitSpec describes one shelving unit of the upper row.
type UnitSpec struct {
	Width  float64
	Closed Closed
}

// Config holds the dimensions of the whole unit, in length units (millimeters).
// Rows are listed right to left: the drawing is mirrored horizontally.
type Config struct {
	Width, Height float64 // wall

	SkirtingHeight  float64
	CrownHeight     float64
	BaseHeight      float64
	CounterHeight   float64
	CounterOverhang float64

	EndPanelWidth  float64 // filler panel starting the base and top rows
	ShelfThickness float64
	ShelfSpacing   Spacing

	BaseDoors  []DoorSpec
	ShelfUnits []UnitSpec

	Scale float64 // length units per drawing unit
}

// DefaultConfig returns the reference cabinet, 3220 x 2700 mm.
func DefaultConfig() Config {
	return Config{
		Width:           3220,
		Height:          2700,
		SkirtingHeight:  150,
		CrownHeight:     150,
		BaseHeight:      720,
		CounterHeight:   50,
		CounterOverhang: 20,
		EndPanelWidth:   100,
		ShelfThickness:  20,
		ShelfSpacing:    Spacing{500, 300},
		BaseDoors: []DoorSpec{
			{600, Left},
			{450, Left},
			{450, Right},
			{450, Left},
			{450, Right},
			{600, Right},
		},
		ShelfUnits: []UnitSpec{
			{600, ClosedNone},
			{900, ClosedNone},
			{900, ClosedNone},
			{600, ClosedLeft},
		},
		Scale: 100,
	}
}

// ShelvingHeight is the height left for the shelving units,
// once the other rows are placed.
func (c Config) ShelvingHeight() float64 {
	return c.Height - c.BaseHeight - c.CounterHeight - c.CrownHeight - c.SkirtingHeight
}

func (c Config) baseRow() []Drawable {
	out := []Drawable{Panel{Width: c.EndPanelWidth, Height: c.BaseHeight}}
	for _, d := range c.BaseDoors {
		out = append(out, NewDoor(d.Width, c.BaseHeight, d.Knob))
	}
	return out
}

func (c Config) topRow() []Drawable {
	h := c.ShelvingHeight()
	out := []Drawable{Panel{Width: c.EndPanelWidth, Height: h}}
	for _, u := range c.ShelfUnits {
		out = append(out, Shelves{
			Width:     u.Width,
			Height:    h,
			Spacing:   c.ShelfSpacing,
			Thickness: c.ShelfThickness,
			Closed:    u.Closed,
		})
	}
	return out
}

// CabinetWidth is the total width of the base row.
func (c Config) CabinetWidth() float64 {
	var w float64
	for _, d := range c.baseRow() {
		dw, _ := d.Size()
		w += dw
	}
	return w
}

// Rows returns the rows of the unit, bottom to top:
// skirting, base cabinets, counter, shelving and crown.
func (c Config) Rows() []Row {
	total := c.CabinetWidth()
	return []Row{
		{Name: "skirting", Items: []Drawable{Panel{Width: total + c.CounterOverhang, Height: c.SkirtingHeight, Fill: "white"}}},
		{Name: "base", Items: c.baseRow()},
		{Name: "counter", Items: []Drawable{Panel{Width: total + c.CounterOverhang, Height: c.CounterHeight, Fill: "white"}}},
		{Name: "top", Items: c.topRow()},
		{Name: "crown", Items: []Drawable{Panel{Width: total, Height: c.CrownHeight}}},
	}
}

// Layout returns the layout of the configured unit.
func (c Config) Layout() *Layout {
	return &Layout{
		Width:        c.Width,
		Height:       c.Height,
		CabinetWidth: c.CabinetWidth(),
		Scale:        c.Scale,
		Rows:         c.Rows(),
	}
}
