package wad

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutsTileStride(t *testing.T) {
	for _, l := range layouts {
		assert.NoError(t, l.check(), l.name)
	}

	broken := layout{"BROKEN", 6, []field{{0, fieldInt16}, {0, fieldInt16}, {4, fieldInt16}}}
	assert.Error(t, broken.check(), "repeated offset")
	short := layout{"SHORT", 6, []field{{0, fieldInt16}, {2, fieldInt16}}}
	assert.Error(t, short.check(), "uncovered tail")
}

func TestSlotsMatchLayouts(t *testing.T) {
	tests := []struct {
		l     layout
		slots []any
	}{
		{thingLayout, (&Thing{}).slots()},
		{linedefLayout, (&Linedef{}).slots()},
		{sidedefLayout, (&Sidedef{}).slots()},
		{vertexLayout, (&MapVertex{}).slots()},
		{segLayout, (&Seg{}).slots()},
		{subSectorLayout, (&SubSector{}).slots()},
		{nodeLayout, (&Node{}).slots()},
		{sectorLayout, (&Sector{}).slots()},
	}
	for _, test := range tests {
		require.Len(t, test.slots, len(test.l.fields), test.l.name)
		for i, f := range test.l.fields {
			switch f.kind {
			case fieldInt16:
				assert.IsType(t, (*int16)(nil), test.slots[i], "%v field %d", test.l.name, i)
			case fieldUint16:
				assert.IsType(t, (*uint16)(nil), test.slots[i], "%v field %d", test.l.name, i)
			case fieldName8:
				assert.IsType(t, (*String8)(nil), test.slots[i], "%v field %d", test.l.name, i)
			}
		}
	}
}

func roundTrip[T any](t *testing.T, name string, records []T, encode func([]T) []byte,
	decode func([]byte) ([]T, error)) {
	t.Helper()
	lump := encode(records)
	decoded, err := decode(lump)
	require.NoError(t, err, name)
	assert.Equal(t, records, decoded, name)
	assert.Equal(t, lump, encode(decoded), name)
}

func TestRecordsRoundTrip(t *testing.T) {
	level := squareLevel()
	roundTrip(t, "things", level.things, EncodeThings, DecodeThings)
	roundTrip(t, "linedefs", level.linedefs, EncodeLinedefs, DecodeLinedefs)
	roundTrip(t, "sidedefs", level.sidedefs, EncodeSidedefs, DecodeSidedefs)
	roundTrip(t, "vertexes", level.vertexes, EncodeMapVertexes, DecodeMapVertexes)
	roundTrip(t, "segs", level.segs, EncodeSegs, DecodeSegs)
	roundTrip(t, "sub sectors", level.subSectors, EncodeSubSectors, DecodeSubSectors)
	roundTrip(t, "nodes", level.nodes, EncodeNodes, DecodeNodes)
	roundTrip(t, "sectors", level.sectors, EncodeSectors, DecodeSectors)
}

// reencode decodes lump and encodes the result again
func reencode[T any](lump []byte, decode func([]byte) ([]T, error), encode func([]T) []byte) ([]byte, error) {
	records, err := decode(lump)
	if err != nil {
		return nil, err
	}
	return encode(records), nil
}

func TestRecordsReencodeExact(t *testing.T) {
	codecs := map[string]func([]byte) ([]byte, error){
		"THINGS":   func(b []byte) ([]byte, error) { return reencode(b, DecodeThings, EncodeThings) },
		"LINEDEFS": func(b []byte) ([]byte, error) { return reencode(b, DecodeLinedefs, EncodeLinedefs) },
		"SIDEDEFS": func(b []byte) ([]byte, error) { return reencode(b, DecodeSidedefs, EncodeSidedefs) },
		"VERTEXES": func(b []byte) ([]byte, error) { return reencode(b, DecodeMapVertexes, EncodeMapVertexes) },
		"SEGS":     func(b []byte) ([]byte, error) { return reencode(b, DecodeSegs, EncodeSegs) },
		"SSECTORS": func(b []byte) ([]byte, error) { return reencode(b, DecodeSubSectors, EncodeSubSectors) },
		"NODES":    func(b []byte) ([]byte, error) { return reencode(b, DecodeNodes, EncodeNodes) },
		"SECTORS":  func(b []byte) ([]byte, error) { return reencode(b, DecodeSectors, EncodeSectors) },
	}
	require.Len(t, codecs, len(layouts))

	for _, l := range layouts {
		codec, ok := codecs[l.name]
		require.True(t, ok, l.name)

		// Three records of bytes that differ in both halves of every word
		lump := make([]byte, 3*l.stride)
		for i := range lump {
			lump[i] = byte(i*37 + 11)
		}
		got, err := codec(lump)
		require.NoError(t, err, l.name)
		assert.Equal(t, lump, got, l.name)
	}
}

func TestDecodeLinedefsFieldOffsets(t *testing.T) {
	lump := words(1, 2, 0x0004, 0x0001, 7, 0, 0xffff)
	linedefs, err := DecodeLinedefs(lump)
	require.NoError(t, err)
	require.Len(t, linedefs, 1)
	assert.Equal(t, Linedef{V1: 1, V2: 2, Flags: LineTwoSided, Type: 1, Tag: 7, SideR: 0, SideL: NoSidedef},
		linedefs[0])
	assert.True(t, linedefs[0].TwoSided())
	assert.True(t, linedefs[0].Special())
	assert.False(t, linedefs[0].Impassable())
}

func TestDecodeNodeReadsEveryOffset(t *testing.T) {
	// Every field gets a distinct value so a field read from the wrong offset shows up
	lump := words(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0x8003, 14)
	nodes, err := DecodeNodes(lump)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	want := Node{
		X: 1, Y: 2, DX: 3, DY: 4,
		BBoxR:  BBox{Top: 5, Bottom: 6, Left: 7, Right: 8},
		BBoxL:  BBox{Top: 9, Bottom: 10, Left: 11, Right: 12},
		ChildR: 0x8003, ChildL: 14,
	}
	assert.Equal(t, want, nodes[0])

	assert.True(t, IsSubSectorChild(nodes[0].Child(0)))
	assert.Equal(t, 3, ChildIndex(nodes[0].Child(0)))
	assert.False(t, IsSubSectorChild(nodes[0].Child(1)))
	assert.Equal(t, 14, ChildIndex(nodes[0].Child(1)))
}

func TestDecodeSidedefNames(t *testing.T) {
	sidedefs, err := DecodeSidedefs(EncodeSidedefs([]Sidedef{{
		XOffset: -8, Upper: NewString8("-"), Lower: NewString8("BROWN1"), Middle: NewString8("COMPTALL"), Sector: 3,
	}}))
	require.NoError(t, err)
	require.Len(t, sidedefs, 1)
	assert.Equal(t, int16(-8), sidedefs[0].XOffset)
	assert.Equal(t, "-", sidedefs[0].Upper.String())
	assert.Equal(t, "BROWN1", sidedefs[0].Lower.String())
	assert.Equal(t, "COMPTALL", sidedefs[0].Middle.String())
	assert.Equal(t, int16(3), sidedefs[0].Sector)
}

func TestDecodeVertexesScale(t *testing.T) {
	lump := EncodeMapVertexes([]MapVertex{{-100, 200}, {32767, -32768}})
	vertexes, err := DecodeVertexes(lump, 0.05)
	require.NoError(t, err)
	require.Len(t, vertexes, 2)
	assert.Equal(t, Vertex{X: -5, Y: 10}, vertexes[0])
	assert.InDelta(t, 1638.35, vertexes[1].X, 0.01)
	assert.InDelta(t, -1638.4, vertexes[1].Y, 0.01)

	vertexes, err = DecodeVertexes(lump, 1)
	require.NoError(t, err)
	assert.Equal(t, Vertex{X: -100, Y: 200}, vertexes[0])
}

func TestDecodeTruncatedLump(t *testing.T) {
	_, err := DecodeLinedefs(make([]byte, 15))
	assert.True(t, errors.Is(err, ErrTruncatedLump), "got %v", err)
	_, err = DecodeVertexes(make([]byte, 6), 1)
	assert.True(t, errors.Is(err, ErrTruncatedLump), "got %v", err)
	_, err = DecodeNodes(make([]byte, 27))
	assert.True(t, errors.Is(err, ErrTruncatedLump), "got %v", err)

	things, err := DecodeThings(nil)
	require.NoError(t, err)
	assert.Empty(t, things)
}

func TestThingOptions(t *testing.T) {
	thing := Thing{Angle: 90, Options: ThingSkill3 | ThingAmbush}
	assert.InDelta(t, math.Pi/2, thing.Radians(), 1e-9)
	assert.True(t, thing.Ambush())
	assert.False(t, thing.MultiplayerOnly())
	assert.False(t, thing.OnSkill(1))
	assert.True(t, thing.OnSkill(3))
	assert.False(t, thing.OnSkill(5))
}

func TestSegRadians(t *testing.T) {
	tests := []struct {
		angle int16
		want  float64
	}{
		{0, 0},
		{16384, math.Pi / 2},
		{-32768, math.Pi},
		{-16384, 3 * math.Pi / 2},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, Seg{Angle: test.angle}.Radians(), 1e-9, "angle %d", test.angle)
	}
}
