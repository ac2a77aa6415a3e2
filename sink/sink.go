// Package sink renders decoded wad lines: SVG and PNG for a top-down map view, glTF for a 3D
// line mesh, YAML and spew dumps for inspection.
package sink

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	wad "github.com/stuarthighley/wadlines"
)

// Default colors: plain walls red, special lines yellow
var (
	WallColor   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	MarkedColor = color.RGBA{0xff, 0xff, 0x00, 0xff}
)

// Colors by line kind, after wad2svg
var kindColors = map[wad.LineKind]color.RGBA{
	wad.KindDoor:     {0x00, 0x80, 0x00, 0xff},
	wad.KindLift:     {0x00, 0x00, 0xff, 0xff},
	wad.KindTeleport: {0xff, 0x00, 0xff, 0xff},
	wad.KindExit:     {0x80, 0x00, 0x80, 0xff},
	wad.KindOther:    {0xff, 0xa5, 0x00, 0xff},
}

// LineColor picks a line's color. With byKind set, marked lines are colored by function
// instead of all alike.
func LineColor(l wad.Line, byKind bool) color.RGBA {
	if !l.Marked {
		return WallColor
	}
	if byKind {
		if c, ok := kindColors[l.Kind()]; ok {
			return c
		}
	}
	return MarkedColor
}

// Plane maps a map vertex onto the horizontal plane of a y-up 3D space
func Plane(v wad.Vertex) mgl32.Vec3 {
	return mgl32.Vec3{v.X, 0, v.Y}
}

// fitter maps render space onto an image of the given size with a margin, keeping the aspect
// ratio and flipping y so north is up.
type fitter struct {
	bbox          wad.BoundBox
	scale         float64
	offX, offY    float64
	width, height float64
}

func newFitter(bbox wad.BoundBox, width, height int, margin float64) fitter {
	f := fitter{bbox: bbox, width: float64(width), height: float64(height), scale: 1}
	w, h := float64(bbox.Width()), float64(bbox.Height())
	availW, availH := f.width-2*margin, f.height-2*margin
	if w > 0 && h > 0 {
		f.scale = min(availW/w, availH/h)
	} else if w > 0 {
		f.scale = availW / w
	} else if h > 0 {
		f.scale = availH / h
	}
	f.offX = (f.width - w*f.scale) / 2
	f.offY = (f.height - h*f.scale) / 2
	return f
}

func (f fitter) point(v wad.Vertex) (float64, float64) {
	x := (float64(v.X)-float64(f.bbox.Left))*f.scale + f.offX
	y := f.height - ((float64(v.Y)-float64(f.bbox.Bottom))*f.scale + f.offY)
	return x, y
}
