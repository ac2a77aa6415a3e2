package wad

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

type fieldKind int

const (
	fieldInt16 fieldKind = iota
	fieldUint16
	fieldName8
)

func (k fieldKind) size() int {
	if k == fieldName8 {
		return 8
	}
	return 2
}

type field struct {
	offset int
	kind   fieldKind
}

// layout describes one fixed-size record. Fields are listed in the same order as the
// record's slots.
type layout struct {
	name   string
	stride int
	fields []field
}

// Record layouts, from The Unofficial DOOM Specs chapter 4
var (
	thingLayout = layout{"THINGS", 10, []field{
		{0, fieldInt16}, // X
		{2, fieldInt16}, // Y
		{4, fieldInt16}, // Angle
		{6, fieldInt16}, // Type
		{8, fieldInt16}, // Options
	}}
	linedefLayout = layout{"LINEDEFS", 14, []field{
		{0, fieldInt16},  // V1
		{2, fieldInt16},  // V2
		{4, fieldInt16},  // Flags
		{6, fieldInt16},  // Type
		{8, fieldInt16},  // Tag
		{10, fieldInt16}, // SideR
		{12, fieldInt16}, // SideL
	}}
	sidedefLayout = layout{"SIDEDEFS", 30, []field{
		{0, fieldInt16},  // XOffset
		{2, fieldInt16},  // YOffset
		{4, fieldName8},  // Upper
		{12, fieldName8}, // Lower
		{20, fieldName8}, // Middle
		{28, fieldInt16}, // Sector
	}}
	vertexLayout = layout{"VERTEXES", 4, []field{
		{0, fieldInt16}, // X
		{2, fieldInt16}, // Y
	}}
	segLayout = layout{"SEGS", 12, []field{
		{0, fieldInt16},  // V1
		{2, fieldInt16},  // V2
		{4, fieldInt16},  // Angle
		{6, fieldInt16},  // Linedef
		{8, fieldInt16},  // Direction
		{10, fieldInt16}, // Offset
	}}
	subSectorLayout = layout{"SSECTORS", 4, []field{
		{0, fieldInt16}, // NumSegs
		{2, fieldInt16}, // FirstSeg
	}}
	nodeLayout = layout{"NODES", 28, []field{
		{0, fieldInt16},   // X
		{2, fieldInt16},   // Y
		{4, fieldInt16},   // DX
		{6, fieldInt16},   // DY
		{8, fieldInt16},   // BBoxR.Top
		{10, fieldInt16},  // BBoxR.Bottom
		{12, fieldInt16},  // BBoxR.Left
		{14, fieldInt16},  // BBoxR.Right
		{16, fieldInt16},  // BBoxL.Top
		{18, fieldInt16},  // BBoxL.Bottom
		{20, fieldInt16},  // BBoxL.Left
		{22, fieldInt16},  // BBoxL.Right
		{24, fieldUint16}, // ChildR
		{26, fieldUint16}, // ChildL
	}}
	sectorLayout = layout{"SECTORS", 26, []field{
		{0, fieldInt16},  // FloorHeight
		{2, fieldInt16},  // CeilingHeight
		{4, fieldName8},  // FloorTexture
		{12, fieldName8}, // CeilingTexture
		{20, fieldInt16}, // LightLevel
		{22, fieldInt16}, // Special
		{24, fieldInt16}, // Tag
	}}
)

var layouts = []layout{
	thingLayout, linedefLayout, sidedefLayout, vertexLayout,
	segLayout, subSectorLayout, nodeLayout, sectorLayout,
}

// check verifies that the fields cover every byte of the stride exactly once
func (l layout) check() error {
	next := 0
	for i, f := range l.fields {
		if f.offset != next {
			return errors.Errorf("%v field %d: offset %d, expected %d", l.name, i, f.offset, next)
		}
		next += f.kind.size()
	}
	if next != l.stride {
		return errors.Errorf("%v: fields cover %d bytes, stride is %d", l.name, next, l.stride)
	}
	return nil
}

// slotter is implemented by record pointers. slots returns pointers to the record's fields in
// layout order: *int16, *uint16 or *String8 to match the field kinds.
type slotter[T any] interface {
	*T
	slots() []any
}

// decodeRecords decodes lump as a sequence of fixed-size records, preserving order
func decodeRecords[T any, P slotter[T]](lump []byte, l layout) ([]T, error) {
	if len(lump)%l.stride != 0 {
		return nil, errors.Wrapf(ErrTruncatedLump, "%v: %d bytes is not a multiple of %d",
			l.name, len(lump), l.stride)
	}
	records := make([]T, len(lump)/l.stride)
	c := NewCursor(lump)
	for i := range records {
		base := i * l.stride
		slots := P(&records[i]).slots()
		for j, f := range l.fields {
			if err := c.Seek(base + f.offset); err != nil {
				return nil, err
			}
			if err := readField(c, f.kind, slots[j]); err != nil {
				return nil, errors.Wrapf(err, "%v record %d field %d", l.name, i, j)
			}
		}
	}
	return records, nil
}

func readField(c *Cursor, kind fieldKind, slot any) error {
	var err error
	switch kind {
	case fieldInt16:
		*slot.(*int16), err = c.ReadI16()
	case fieldUint16:
		*slot.(*uint16), err = c.ReadU16()
	case fieldName8:
		*slot.(*String8), err = c.ReadString8()
	}
	return err
}

// encodeRecords is the inverse of decodeRecords
func encodeRecords[T any, P slotter[T]](records []T, l layout) []byte {
	buf := make([]byte, len(records)*l.stride)
	for i := range records {
		base := i * l.stride
		slots := P(&records[i]).slots()
		for j, f := range l.fields {
			b := buf[base+f.offset : base+f.offset+f.kind.size()]
			switch f.kind {
			case fieldInt16:
				binary.LittleEndian.PutUint16(b, uint16(*slots[j].(*int16)))
			case fieldUint16:
				binary.LittleEndian.PutUint16(b, *slots[j].(*uint16))
			case fieldName8:
				s := slots[j].(*String8)
				copy(b, s[:])
			}
		}
	}
	return buf
}
