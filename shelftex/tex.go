// Implements a TikZ backend for cabinet layouts:
// the layout is written as a standalone LaTeX document,
// to be compiled with pdflatex.
package shelftex

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/shelfdraw/shelf"
)

const (
	preamble = `\documentclass{article}
\usepackage{tikz}

\begin{document}

\begin{tikzpicture}[scale=0.4, xscale=-1]
`
	trailer = `
\end{tikzpicture}

\end{document}`

	indent = "    "
)

// formatNumber writes `v` as the shortest decimal representation
// which round trips, always showing a fractional part
// (1 is written 1.0). Zero is written 0.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// writes the TikZ commands
type writer struct {
	lines []string
}

func (w *writer) Rect(r shelf.Rect) {
	cmd := `\draw`
	if r.Fill != "" {
		cmd = fmt.Sprintf(`\filldraw[draw=black,fill=%s]`, r.Fill)
	}
	w.lines = append(w.lines, fmt.Sprintf(`%s (%s,%s) rectangle (%s,%s);`, cmd,
		formatNumber(r.Min.X), formatNumber(r.Min.Y), formatNumber(r.Max.X), formatNumber(r.Max.Y)))
}

func (w *writer) Line(l shelf.Line) {
	w.lines = append(w.lines, fmt.Sprintf(`\draw (%s, %s) -- (%s, %s);`,
		formatNumber(l.From.X), formatNumber(l.From.Y), formatNumber(l.To.X), formatNumber(l.To.Y)))
}

func (w *writer) Circle(c shelf.Circle) {
	w.lines = append(w.lines, fmt.Sprintf(`\draw (%s, %s) circle (%s);`,
		formatNumber(c.Center.X), formatNumber(c.Center.Y), formatNumber(c.Radius)))
}

// Fragment returns the TikZ commands for `f`, one per line,
// without trailing newline.
func Fragment(f shelf.Fragment) string {
	var w writer
	f.DrawTo(&w)
	return strings.Join(w.lines, "\n")
}

func shift(dx, dy string) string {
	return fmt.Sprintf(`\tikzset{shift={(%s,%s)}}`, dx, dy)
}

// Document returns the full LaTeX document for the layout.
// Items are drawn in their own coordinates, and positioned by
// shifting the TikZ origin after each of them.
func Document(l *shelf.Layout) (string, error) {
	placements, err := l.Place()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(preamble)

	W, H := l.Width/l.Scale, l.Height/l.Scale
	sb.WriteString(indent + "% wall\n")
	fmt.Fprintf(&sb, indent+`\draw (0,0) rectangle (%.2f,%.2f);`+"\n", W, H)
	fmt.Fprintf(&sb, indent+`\filldraw[draw=black,fill=%s] (%.2f,%.2f) rectangle (%.2f,%.2f);`+"\n",
		shelf.WallColor, l.CabinetWidth/l.Scale, 0., W, H)

	var (
		xoffset float64
		current = -1
	)
	endRow := func() {
		if current < 0 {
			return
		}
		h := l.Rows[current].Height() / l.Scale
		sb.WriteString(indent + shift(formatNumber(-xoffset), formatNumber(h)) + "\n")
	}
	for _, p := range placements {
		if p.Row != current {
			endRow()
			current, xoffset = p.Row, 0
			fmt.Fprintf(&sb, "\n"+indent+"%% ROW=%d\n", p.Row)
		}
		fmt.Fprintf(&sb, indent+"%% box=%d\n", p.Index)
		sb.WriteString(indent + strings.ReplaceAll(Fragment(p.Local), "\n", "\n"+indent) + "\n")

		w, _ := p.Item.Size()
		sb.WriteString(indent + shift(formatNumber(w/l.Scale), "0") + "\n")
		xoffset += w / l.Scale
	}
	endRow()

	sb.WriteString(trailer)
	sb.WriteString("\n")
	return sb.String(), nil
}

// Write writes the LaTeX document for the layout into `out`.
// Nothing is written if the layout can't be drawn.
func Write(out io.Writer, l *shelf.Layout) error {
	doc, err := Document(l)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, doc)
	return err
}
