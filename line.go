package wad

import (
	"math"

	"github.com/pkg/errors"
)

// Line is one wall segment ready for rendering. Marked lines carry a special type (door, lift,
// switch, trigger) and are drawn in a distinct color.
type Line struct {
	From, To Vertex
	Marked   bool
	Type     int16 // Linedef type, 0 for a plain wall
}

// BuildLines resolves each linedef's vertexes and returns one Line per linedef in linedef
// order. An index outside the vertex table is an error, never skipped.
func BuildLines(vertexes []Vertex, linedefs []Linedef) ([]Line, error) {
	lines := make([]Line, len(linedefs))
	for i, ld := range linedefs {
		from, err := vertexAt(vertexes, ld.V1)
		if err != nil {
			return nil, errors.Wrapf(err, "linedef %d start", i)
		}
		to, err := vertexAt(vertexes, ld.V2)
		if err != nil {
			return nil, errors.Wrapf(err, "linedef %d end", i)
		}
		lines[i] = Line{From: from, To: to, Marked: ld.Special(), Type: ld.Type}
	}
	logger.Debugf("Built %v lines", len(lines))
	return lines, nil
}

func vertexAt(vertexes []Vertex, index int16) (Vertex, error) {
	if index < 0 || int(index) >= len(vertexes) {
		return Vertex{}, errors.Wrapf(ErrDanglingVertexReference, "vertex %d of %d", index, len(vertexes))
	}
	return vertexes[index], nil
}

// BoundBox is an axis aligned box in render space
type BoundBox struct {
	Top, Bottom, Left, Right float32
}

func (b BoundBox) Width() float32  { return b.Right - b.Left }
func (b BoundBox) Height() float32 { return b.Top - b.Bottom }

func newBBox() BoundBox {
	return BoundBox{
		Left:   math.MaxFloat32,
		Right:  -math.MaxFloat32,
		Bottom: math.MaxFloat32,
		Top:    -math.MaxFloat32,
	}
}

func (b *BoundBox) add(v Vertex) {
	b.Left = min(b.Left, v.X)
	b.Right = max(b.Right, v.X)
	b.Bottom = min(b.Bottom, v.Y)
	b.Top = max(b.Top, v.Y)
}

// Bounds returns the box around every line end. It is the zero box for no lines.
func Bounds(lines []Line) BoundBox {
	if len(lines) == 0 {
		return BoundBox{}
	}
	bbox := newBBox()
	for _, l := range lines {
		bbox.add(l.From)
		bbox.add(l.To)
	}
	return bbox
}

// LineKind groups linedef types by what they do, for sinks that color by function
type LineKind int

const (
	KindWall LineKind = iota
	KindDoor
	KindLift
	KindTeleport
	KindExit
	KindOther
)

var lineKinds = map[int16]LineKind{
	1: KindDoor, 2: KindDoor, 3: KindDoor, 4: KindDoor, 16: KindDoor, 26: KindDoor, 27: KindDoor,
	28: KindDoor, 29: KindDoor, 31: KindDoor, 32: KindDoor, 33: KindDoor, 34: KindDoor,
	46: KindDoor, 50: KindDoor, 61: KindDoor, 63: KindDoor, 75: KindDoor, 76: KindDoor,
	86: KindDoor, 90: KindDoor, 103: KindDoor, 105: KindDoor, 106: KindDoor, 107: KindDoor,
	108: KindDoor, 109: KindDoor, 110: KindDoor, 111: KindDoor, 112: KindDoor, 113: KindDoor,
	114: KindDoor, 115: KindDoor, 116: KindDoor, 117: KindDoor, 118: KindDoor,
	10: KindLift, 21: KindLift, 62: KindLift, 88: KindLift, 120: KindLift, 121: KindLift,
	122: KindLift, 123: KindLift,
	39: KindTeleport, 97: KindTeleport, 125: KindTeleport, 126: KindTeleport,
	11: KindExit, 51: KindExit, 52: KindExit, 124: KindExit,
}

// Kind classifies the line by its linedef type
func (l Line) Kind() LineKind {
	if l.Type == 0 {
		return KindWall
	}
	if k, ok := lineKinds[l.Type]; ok {
		return k
	}
	return KindOther
}
