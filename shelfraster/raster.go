// Implements a raster backend to render cabinet layouts,
// by wrapping rasterx.
package shelfraster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/benoitkugler/shelfdraw/shelf"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

var _ shelf.Driver = (*Renderer)(nil) // assert interface conformance

// DefaultLineWidth is the stroke width, in pixels.
const DefaultLineWidth = 1.5

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	// maps drawing units to pixels
	M         rasterx.Matrix2D
	LineWidth float64
}

// NewRenderer returns a renderer with default values.
// If scanner is nil, a default scanner rasterx.ScannerGV is used,
// painting into a new image.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	return &Renderer{
		dasher:    rasterx.NewDasher(width, height, scanner),
		filler:    rasterx.NewFiller(width, height, scanner),
		M:         rasterx.Identity,
		LineWidth: DefaultLineWidth,
	}
}

// Mirrored returns the transform used for layouts: a drawing of
// `w` x `h` units is mapped to `ppu` pixels per unit, with the y axis
// pointing up and the x axis mirrored, as in the TikZ output.
func Mirrored(w, h, ppu float64) rasterx.Matrix2D {
	return rasterx.Identity.Translate(w*ppu, h*ppu).Scale(-ppu, -ppu)
}

// Color resolves a color name, defaulting to black.
// Unknown names are logged and replaced by black.
func Color(name string) color.Color {
	if name == "" {
		return color.Black
	}
	c, ok := colornames.Map[name]
	if !ok {
		log.Printf("unsupported color %q, using black", name)
		return color.Black
	}
	return c
}

func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (rd *Renderer) setupStroke() {
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(rd.LineWidth*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
	rd.dasher.SetColor(color.Black)
}

func (rd *Renderer) Rect(r shelf.Rect) {
	if r.Fill != "" {
		rd.filler.Clear()
		rd.filler.SetWinding(true)
		rasterx.AddRect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, 0, &rasterx.MatrixAdder{Adder: rd.filler, M: rd.M})
		rd.filler.SetColor(Color(r.Fill))
		rd.filler.Draw()
	}

	rd.setupStroke()
	rasterx.AddRect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, 0, &rasterx.MatrixAdder{Adder: rd.dasher, M: rd.M})
	rd.dasher.Draw()
}

func (rd *Renderer) Line(l shelf.Line) {
	rd.setupStroke()
	x1, y1 := rd.M.Transform(l.From.X, l.From.Y)
	x2, y2 := rd.M.Transform(l.To.X, l.To.Y)
	rd.dasher.Start(toFixedP(x1, y1))
	rd.dasher.Line(toFixedP(x2, y2))
	rd.dasher.Stop(false)
	rd.dasher.Draw()
}

func (rd *Renderer) Circle(c shelf.Circle) {
	rd.setupStroke()
	rasterx.AddCircle(c.Center.X, c.Center.Y, c.Radius, &rasterx.MatrixAdder{Adder: rd.dasher, M: rd.M})
	rd.dasher.Draw()
}

// RasterLayout renders the layout on a white background,
// at `ppu` pixels per drawing unit.
func RasterLayout(l *shelf.Layout, ppu float64) (*image.RGBA, error) {
	if ppu <= 0 {
		return nil, fmt.Errorf("shelfraster: invalid resolution %g", ppu)
	}
	w, h := l.Width/l.Scale, l.Height/l.Scale
	W, H := int(math.Ceil(w*ppu)), int(math.Ceil(h*ppu))
	img := image.NewRGBA(image.Rect(0, 0, W, H))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(W, H, img, img.Bounds())
	renderer := NewRenderer(W, H, scanner)
	renderer.M = Mirrored(w, h, ppu)
	if err := l.Draw(renderer); err != nil {
		return nil, err
	}
	return img, nil
}
