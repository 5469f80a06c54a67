// Command bookshelf prints the TikZ drawing of the reference
// cabinet on standard output.
//
// Usage:
//
//	bookshelf > bookshelf.tex; pdflatex bookshelf.tex
package main

import (
	"io"
	"log"
	"os"

	"github.com/benoitkugler/shelfdraw/shelf"
	"github.com/benoitkugler/shelfdraw/shelftex"
)

// run writes the TikZ document of the cabinet described by cfg.
// Nothing is written on error.
func run(out io.Writer, cfg shelf.Config) error {
	return shelftex.Write(out, cfg.Layout())
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bookshelf: ")

	if err := run(os.Stdout, shelf.DefaultConfig()); err != nil {
		log.Fatal(err)
	}
}
