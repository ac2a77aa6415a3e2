package wad

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// levelData is a level's records before encoding
type levelData struct {
	things     []Thing
	linedefs   []Linedef
	sidedefs   []Sidedef
	vertexes   []MapVertex
	segs       []Seg
	subSectors []SubSector
	nodes      []Node
	sectors    []Sector
	reject     []byte
	blockMap   []byte
}

// squareLevel is a 64x64 room with a door on its south wall
func squareLevel() levelData {
	side := Sidedef{Middle: NewString8("STARTAN3"), Sector: 0}
	return levelData{
		things: []Thing{{X: 32, Y: 32, Angle: 90, Type: 1, Options: ThingSkill1and2 | ThingSkill3}},
		linedefs: []Linedef{
			{V1: 0, V2: 1, Flags: LineBlockPlayerAndMonsters, Type: 1, SideR: 0, SideL: NoSidedef},
			{V1: 1, V2: 2, Flags: LineBlockPlayerAndMonsters, SideR: 1, SideL: NoSidedef},
			{V1: 2, V2: 3, Flags: LineBlockPlayerAndMonsters, SideR: 2, SideL: NoSidedef},
			{V1: 3, V2: 0, Flags: LineBlockPlayerAndMonsters, SideR: 3, SideL: NoSidedef},
		},
		sidedefs: []Sidedef{side, side, side, side},
		vertexes: []MapVertex{{0, 0}, {64, 0}, {64, 64}, {0, 64}},
		segs: []Seg{
			{V1: 0, V2: 1, Linedef: 0},
			{V1: 1, V2: 2, Angle: 16384, Linedef: 1},
			{V1: 2, V2: 3, Angle: -32768, Linedef: 2},
			{V1: 3, V2: 0, Angle: -16384, Linedef: 3},
		},
		subSectors: []SubSector{{NumSegs: 4, FirstSeg: 0}},
		nodes: []Node{{
			X: 0, Y: 0, DX: 64, DY: 0,
			BBoxR:  BBox{Top: 64, Bottom: 0, Left: 0, Right: 64},
			BBoxL:  BBox{Top: 0, Bottom: 0, Left: 0, Right: 64},
			ChildR: SubSectorChild | 0, ChildL: SubSectorChild | 0,
		}},
		sectors: []Sector{{
			FloorHeight: 0, CeilingHeight: 128,
			FloorTexture: NewString8("FLOOR4_8"), CeilingTexture: NewString8("CEIL3_5"),
			LightLevel: 160,
		}},
		reject: []byte{0x00},
		// Header (4 words), one offset (word 5), then the list 0, 0, 1, 2, 3, 0xFFFF
		blockMap: words(0, 0, 1, 1, 5, 0, 0, 1, 2, 3, 0xffff),
	}
}

// triangleLevel is a second, smaller level so selection mistakes show up as wrong counts
func triangleLevel() levelData {
	return levelData{
		linedefs: []Linedef{
			{V1: 0, V2: 1, SideR: 0, SideL: NoSidedef},
			{V1: 1, V2: 2, SideR: 0, SideL: NoSidedef},
			{V1: 2, V2: 0, Type: 11, SideR: 0, SideL: NoSidedef},
		},
		sidedefs: []Sidedef{{Sector: 0}},
		vertexes: []MapVertex{{-100, 200}, {300, 200}, {100, -50}},
		sectors:  []Sector{{CeilingHeight: 72}},
	}
}

// lumps returns the marker followed by the level lumps in engine order
func (d levelData) lumps(marker string) []LumpData {
	return []LumpData{
		{Name: marker},
		{Name: "THINGS", Data: EncodeThings(d.things)},
		{Name: "LINEDEFS", Data: EncodeLinedefs(d.linedefs)},
		{Name: "SIDEDEFS", Data: EncodeSidedefs(d.sidedefs)},
		{Name: "VERTEXES", Data: EncodeMapVertexes(d.vertexes)},
		{Name: "SEGS", Data: EncodeSegs(d.segs)},
		{Name: "SSECTORS", Data: EncodeSubSectors(d.subSectors)},
		{Name: "NODES", Data: EncodeNodes(d.nodes)},
		{Name: "SECTORS", Data: EncodeSectors(d.sectors)},
		{Name: "REJECT", Data: d.reject},
		{Name: "BLOCKMAP", Data: d.blockMap},
	}
}

// words encodes little-endian 16-bit words
func words(w ...uint16) []byte {
	b := make([]byte, 2*len(w))
	for i, v := range w {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}
	return b
}

func buildWAD(t *testing.T, magic string, groups ...[]LumpData) []byte {
	t.Helper()
	var all []LumpData
	for _, g := range groups {
		all = append(all, g...)
	}
	var buf bytes.Buffer
	require.NoError(t, WriteWAD(&buf, magic, all))
	return buf.Bytes()
}

// testWAD is PLAYPAL, E1M1 (square) and E1M2 (triangle)
func testWAD(t *testing.T) []byte {
	t.Helper()
	return buildWAD(t, "IWAD",
		[]LumpData{{Name: "PLAYPAL", Data: make([]byte, 768)}},
		squareLevel().lumps("E1M1"),
		triangleLevel().lumps("E1M2"),
	)
}
