package sink

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	wad "github.com/stuarthighley/wadlines"
)

// PNG rasterizes a top-down map
type PNG struct {
	W             io.Writer
	Width, Height int
	LineWidth     float64
	ByKind        bool
}

func (p *PNG) DrawLines(level string, lines []wad.Line) error {
	width, height := p.Width, p.Height
	if width <= 0 || height <= 0 {
		width, height = 1280, 1024
	}
	lineWidth := p.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	f := newFitter(wad.Bounds(lines), width, height, 16)

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.Black)
	dc.SetLineWidth(lineWidth)
	for i, l := range lines {
		x1, y1 := f.point(l.From)
		x2, y2 := f.point(l.To)
		dc.SetColor(LineColor(l, p.ByKind))
		dc.DrawLine(x1, y1, x2, y2)
		if err := dc.Stroke(); err != nil {
			return errors.Wrapf(err, "%v line %d", level, i)
		}
	}
	return dc.EncodePNG(p.W)
}
