package shelfpdf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/benoitkugler/shelfdraw/shelf"
	"github.com/jung-kurt/gofpdf"
)

func TestPoint(t *testing.T) {
	r := NewRenderer(gofpdf.New("", "", "", ""), 10, 332, 280)
	for _, test := range [...][4]float64{
		{0, 0, 332, 280},
		{32.2, 27, 10, 10},
		{1, 0.5, 322, 275},
	} {
		x, y := r.point(shelf.Point{X: test[0], Y: test[1]})
		if d := x - test[2]; d > 1e-9 || d < -1e-9 {
			t.Errorf("unexpected x %g for %v", x, test)
		}
		if d := y - test[3]; d > 1e-9 || d < -1e-9 {
			t.Errorf("unexpected y %g for %v", y, test)
		}
	}
}

func TestNewDocument(t *testing.T) {
	pdf, err := NewDocument(shelf.DefaultConfig().Layout(), DefaultUnit, DefaultMargin)
	if err != nil {
		t.Fatal(err)
	}
	w, h := pdf.GetPageSize()
	if w < 341.9 || w > 342.1 || h < 289.9 || h > 290.1 {
		t.Errorf("unexpected page size %g x %g", w, h)
	}
	if n := pdf.PageCount(); n != 1 {
		t.Errorf("expected one page, got %d", n)
	}
}

func TestRenderLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLayout(shelf.DefaultConfig().Layout(), &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}

	cfg := shelf.DefaultConfig()
	cfg.BaseDoors[1].Knob = ""
	buf.Reset()
	if err := RenderLayout(cfg.Layout(), &buf); !errors.Is(err, shelf.ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected no output")
	}
}
