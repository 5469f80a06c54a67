// Builds the cut list of a cabinet layout: one line per
// panel, door or shelving unit, exported as a spreadsheet.
package shelfcut

import (
	"fmt"
	"io"

	"github.com/benoitkugler/shelfdraw/shelf"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the spreadsheet tab.
const SheetName = "Cut list"

// Piece is one item of the layout. Lengths are unscaled.
type Piece struct {
	Row    string
	Index  int
	Kind   string
	Width  float64
	Height float64
	Detail string
}

// header of the spreadsheet, matching the Piece fields
var header = []interface{}{"Row", "Item", "Kind", "Width (mm)", "Height (mm)", "Detail"}

func describe(d shelf.Drawable, scale float64) (kind, detail string) {
	switch d := d.(type) {
	case shelf.Panel:
		return "panel", d.Fill
	case shelf.Door:
		return "door", fmt.Sprintf("knob %s", d.Knob)
	case shelf.Shelves:
		return "shelves", fmt.Sprintf("%d shelves, closed %s", len(d.Cursors(scale)), d.Closed)
	default:
		return fmt.Sprintf("%T", d), ""
	}
}

// Build lists the items of the layout, bottom row first.
// Items are validated by drawing them: an invalid door is reported.
func Build(l *shelf.Layout) ([]Piece, error) {
	placements, err := l.Place()
	if err != nil {
		return nil, err
	}
	out := make([]Piece, len(placements))
	for i, p := range placements {
		w, h := p.Item.Size()
		kind, detail := describe(p.Item, l.Scale)
		out[i] = Piece{
			Row:    l.Rows[p.Row].Name,
			Index:  p.Index,
			Kind:   kind,
			Width:  w,
			Height: h,
			Detail: detail,
		}
	}
	return out, nil
}

// WriteXLSX writes the pieces as an Excel workbook into `out`.
func WriteXLSX(out io.Writer, pieces []Piece) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, p := range pieces {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Row, p.Index, p.Kind, p.Width, p.Height, p.Detail}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	if err := f.Write(out); err != nil {
		return fmt.Errorf("shelfcut: writing workbook: %w", err)
	}
	return nil
}
