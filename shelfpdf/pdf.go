// Implements a PDF backend to render cabinet layouts,
// by wrapping github.com/jung-kurt/gofpdf.
package shelfpdf

import (
	"fmt"
	"io"

	"github.com/benoitkugler/shelfdraw/shelf"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/colornames"
)

var _ shelf.Driver = Renderer{} // assert interface conformance

// default page settings, in millimeters
const (
	DefaultUnit   = 10 // one drawing unit (100 mm) is drawn as 1 cm
	DefaultMargin = 10
)

// Renderer paints on the current page of a PDF, with
// the y axis pointing up and the x axis mirrored.
type Renderer struct {
	pdf *gofpdf.Fpdf

	unit   float64     // millimeters per drawing unit
	origin shelf.Point // page position of the drawing point (0,0)
}

// NewRenderer return a renderer which will
// write to the given `pdf`. The drawing point (0,0) is mapped
// to `originX, originY` on the page, and the x axis is mirrored.
func NewRenderer(pdf *gofpdf.Fpdf, unit, originX, originY float64) Renderer {
	return Renderer{pdf: pdf, unit: unit, origin: shelf.Point{X: originX, Y: originY}}
}

// point maps drawing units to page coordinates
func (r Renderer) point(p shelf.Point) (float64, float64) {
	return r.origin.X - p.X*r.unit, r.origin.Y - p.Y*r.unit
}

func (r Renderer) setFill(name string) {
	c := colornames.Map[name] // unknown names default to black
	r.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (r Renderer) Rect(rect shelf.Rect) {
	x1, y1 := r.point(rect.Min)
	x2, y2 := r.point(rect.Max)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	style := "D"
	if rect.Fill != "" {
		r.setFill(rect.Fill)
		style = "FD"
	}
	r.pdf.Rect(x1, y1, x2-x1, y2-y1, style)
}

func (r Renderer) Line(l shelf.Line) {
	x1, y1 := r.point(l.From)
	x2, y2 := r.point(l.To)
	r.pdf.Line(x1, y1, x2, y2)
}

func (r Renderer) Circle(c shelf.Circle) {
	x, y := r.point(c.Center)
	r.pdf.Circle(x, y, c.Radius*r.unit, "D")
}

// NewDocument returns a one page PDF, sized to fit the layout
// at `unit` millimeters per drawing unit, with the layout drawn on it.
func NewDocument(l *shelf.Layout, unit, margin float64) (*gofpdf.Fpdf, error) {
	box, err := l.Bounds()
	if err != nil {
		return nil, err
	}
	w, h := box.Width()*unit+2*margin, box.Height()*unit+2*margin
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetCreator("shelfdraw", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(0, 0, 0)

	// the box max corner lands on the top left margin
	renderer := NewRenderer(pdf, unit, margin+box.Max.X*unit, margin+box.Max.Y*unit)
	if err := l.Draw(renderer); err != nil {
		return nil, err
	}
	return pdf, pdf.Error()
}

// RenderLayout writes the layout as a PDF file into `out`,
// with the default page settings.
func RenderLayout(l *shelf.Layout, out io.Writer) error {
	pdf, err := NewDocument(l, DefaultUnit, DefaultMargin)
	if err != nil {
		return err
	}
	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("shelfpdf: writing document: %w", err)
	}
	return nil
}
