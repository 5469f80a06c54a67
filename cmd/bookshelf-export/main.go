// Command bookshelf-export writes a PNG preview, a PDF drawing
// and the cut list of the reference cabinet in the working directory.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/benoitkugler/shelfdraw/shelf"
	"github.com/benoitkugler/shelfdraw/shelfcut"
	"github.com/benoitkugler/shelfdraw/shelfpdf"
	"github.com/benoitkugler/shelfdraw/shelfraster"
)

const pixelsPerUnit = 20

type output struct {
	name  string
	write func(b *bytes.Buffer) error
}

func outputs(layout *shelf.Layout) []output {
	return []output{
		{"bookshelf.png", func(b *bytes.Buffer) error {
			img, err := shelfraster.RasterLayout(layout, pixelsPerUnit)
			if err != nil {
				return err
			}
			return png.Encode(b, img)
		}},
		{"bookshelf.pdf", func(b *bytes.Buffer) error {
			return shelfpdf.RenderLayout(layout, b)
		}},
		{"cutlist.xlsx", func(b *bytes.Buffer) error {
			pieces, err := shelfcut.Build(layout)
			if err != nil {
				return err
			}
			return shelfcut.WriteXLSX(b, pieces)
		}},
	}
}

// run renders every output in memory, then writes them in dir.
// No file is created if one of the renderings fails.
func run(dir string, layout *shelf.Layout) error {
	outs := outputs(layout)
	buffers := make([]bytes.Buffer, len(outs))
	for i, o := range outs {
		if err := o.write(&buffers[i]); err != nil {
			return fmt.Errorf("%s: %w", o.name, err)
		}
	}
	for i, o := range outs {
		if err := os.WriteFile(filepath.Join(dir, o.name), buffers[i].Bytes(), 0o644); err != nil {
			return err
		}
		log.Printf("wrote %s (%d bytes)", o.name, buffers[i].Len())
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bookshelf-export: ")

	if err := run(".", shelf.DefaultConfig().Layout()); err != nil {
		log.Fatal(err)
	}
}
