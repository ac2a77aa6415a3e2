package sink

import (
	"bufio"
	"fmt"
	"html"
	"image/color"
	"io"

	wad "github.com/stuarthighley/wadlines"
)

// SVG writes a top-down map as an SVG document
type SVG struct {
	W             io.Writer
	Width, Height int
	StrokeWidth   float64
	ByKind        bool
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (s *SVG) DrawLines(level string, lines []wad.Line) error {
	width, height := s.Width, s.Height
	if width <= 0 || height <= 0 {
		width, height = 1280, 1024
	}
	strokeWidth := s.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	f := newFitter(wad.Bounds(lines), width, height, 16)

	out := bufio.NewWriter(s.W)
	fmt.Fprintln(out, `<?xml version="1.0" standalone="no"?>`)
	fmt.Fprintf(out, "<svg width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		width, height, width, height)
	fmt.Fprintf(out, "  <title>%s</title>\n", html.EscapeString(level))
	fmt.Fprintf(out, "  <rect width=\"100%%\" height=\"100%%\" fill=\"black\"/>\n")
	fmt.Fprintf(out, "  <g stroke-width=\"%g\" stroke-linecap=\"round\">\n", strokeWidth)
	for _, l := range lines {
		x1, y1 := f.point(l.From)
		x2, y2 := f.point(l.To)
		if l.Marked {
			fmt.Fprintf(out, "    <!-- Type %d -->\n", l.Type)
		}
		fmt.Fprintf(out, "    <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\"/>\n",
			x1, y1, x2, y2, hex(LineColor(l, s.ByKind)))
	}
	fmt.Fprintln(out, "  </g>")
	fmt.Fprintln(out, "</svg>")
	return out.Flush()
}
