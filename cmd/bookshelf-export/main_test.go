package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/shelfdraw/shelf"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	if err := run(dir, shelf.DefaultConfig().Layout()); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "bookshelf.png"))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("invalid png: %s", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Errorf("empty image %v", img.Bounds())
	}

	b, err = os.ReadFile(filepath.Join(dir, "bookshelf.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Error("invalid pdf header")
	}

	b, err = os.ReadFile(filepath.Join(dir, "cutlist.xlsx"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("PK")) {
		t.Error("invalid xlsx archive")
	}
}

func TestRunInvalidDoor(t *testing.T) {
	cfg := shelf.DefaultConfig()
	cfg.BaseDoors[1].Knob = "top"
	dir := t.TempDir()
	err := run(dir, cfg.Layout())
	if !errors.Is(err, shelf.ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no file, got %d", len(entries))
	}
}
