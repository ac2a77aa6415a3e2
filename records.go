package wad

// Thing is a point entity: player starts, monsters, items
type Thing struct {
	X, Y    int16
	Angle   int16 // Degrees, 0 is east
	Type    int16
	Options int16
}

func (t *Thing) slots() []any {
	return []any{&t.X, &t.Y, &t.Angle, &t.Type, &t.Options}
}

// Thing option flags
const (
	ThingSkill1and2      = 0x01
	ThingSkill3          = 0x02
	ThingSkill4and5      = 0x04
	ThingAmbush          = 0x08
	ThingMultiplayerOnly = 0x10
)

func (t Thing) Radians() float64      { return degreesToRadians(t.Angle) }
func (t Thing) Ambush() bool          { return t.Options&ThingAmbush != 0 }
func (t Thing) MultiplayerOnly() bool { return t.Options&ThingMultiplayerOnly != 0 }
func (t Thing) OnSkill(level int) bool {
	switch {
	case level <= 2:
		return t.Options&ThingSkill1and2 != 0
	case level == 3:
		return t.Options&ThingSkill3 != 0
	default:
		return t.Options&ThingSkill4and5 != 0
	}
}

// Linedef is a wall between two vertexes. SideR and SideL index SIDEDEFS or are NoSidedef.
type Linedef struct {
	V1, V2       int16
	Flags        int16
	Type         int16
	Tag          int16
	SideR, SideL int16
}

func (l *Linedef) slots() []any {
	return []any{&l.V1, &l.V2, &l.Flags, &l.Type, &l.Tag, &l.SideR, &l.SideL}
}

// NoSidedef marks a missing side on a one-sided linedef
const NoSidedef = -1

// Linedef flags
const (
	LineBlockPlayerAndMonsters = 0x001
	LineBlockMonsters          = 0x002
	LineTwoSided               = 0x004
	LineUpperTextureUnpegged   = 0x008
	LineLowerTextureUnpegged   = 0x010
	LineSecret                 = 0x020
	LineBlocksSound            = 0x040
	LineNeverMap               = 0x080
	LineAlwaysMap              = 0x100
)

// Special reports whether the linedef carries an action type (door, lift, trigger...)
func (l Linedef) Special() bool  { return l.Type != 0 }
func (l Linedef) TwoSided() bool { return l.Flags&LineTwoSided != 0 }
func (l Linedef) Secret() bool   { return l.Flags&LineSecret != 0 }
func (l Linedef) Impassable() bool {
	return l.Flags&LineBlockPlayerAndMonsters != 0
}

// Sidedef holds the textures of one side of a linedef
type Sidedef struct {
	XOffset, YOffset int16
	Upper            String8
	Lower            String8
	Middle           String8
	Sector           int16
}

func (s *Sidedef) slots() []any {
	return []any{&s.XOffset, &s.YOffset, &s.Upper, &s.Lower, &s.Middle, &s.Sector}
}

// MapVertex is a vertex as stored, in map units
type MapVertex struct {
	X, Y int16
}

func (v *MapVertex) slots() []any {
	return []any{&v.X, &v.Y}
}

// Vertex is a map vertex multiplied by the load scale
type Vertex struct {
	X, Y float32
}

// Seg is a BSP line segment, part of a linedef bordering one sub-sector
type Seg struct {
	V1, V2    int16
	Angle     int16 // Binary angle, full circle is -32768 to 32767
	Linedef   int16
	Direction int16 // 0 - same as linedef, 1 - opposite
	Offset    int16 // Distance along linedef to start of seg
}

func (s *Seg) slots() []any {
	return []any{&s.V1, &s.V2, &s.Angle, &s.Linedef, &s.Direction, &s.Offset}
}

func (s Seg) Radians() float64 { return bamToRadians(s.Angle) }

// SubSector is a run of consecutive segs forming a convex region
type SubSector struct {
	NumSegs  int16
	FirstSeg int16
}

func (s *SubSector) slots() []any {
	return []any{&s.NumSegs, &s.FirstSeg}
}

type BBox struct {
	Top, Bottom, Left, Right int16
}

// Node is a BSP partition line with its two children. A child with the high bit set is a
// sub-sector index, otherwise a node index.
type Node struct {
	X, Y           int16
	DX, DY         int16
	BBoxR, BBoxL   BBox
	ChildR, ChildL uint16
}

func (n *Node) slots() []any {
	return []any{
		&n.X, &n.Y, &n.DX, &n.DY,
		&n.BBoxR.Top, &n.BBoxR.Bottom, &n.BBoxR.Left, &n.BBoxR.Right,
		&n.BBoxL.Top, &n.BBoxL.Bottom, &n.BBoxL.Left, &n.BBoxL.Right,
		&n.ChildR, &n.ChildL,
	}
}

// SubSectorChild flags a node child as a sub-sector
const SubSectorChild = 0x8000

// Child returns the child for side 0 (right) or 1 (left)
func (n Node) Child(side int) uint16 {
	if side == 0 {
		return n.ChildR
	}
	return n.ChildL
}

// IsSubSectorChild reports whether a child value refers to a sub-sector
func IsSubSectorChild(child uint16) bool { return child&SubSectorChild != 0 }

// ChildIndex strips the sub-sector flag
func ChildIndex(child uint16) int { return int(child &^ SubSectorChild) }

// Sector is a floor/ceiling region
type Sector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   String8
	CeilingTexture String8
	LightLevel     int16
	Special        int16
	Tag            int16
}

func (s *Sector) slots() []any {
	return []any{&s.FloorHeight, &s.CeilingHeight, &s.FloorTexture, &s.CeilingTexture,
		&s.LightLevel, &s.Special, &s.Tag}
}

func DecodeThings(lump []byte) ([]Thing, error) { return decodeRecords[Thing](lump, thingLayout) }
func DecodeLinedefs(lump []byte) ([]Linedef, error) {
	return decodeRecords[Linedef](lump, linedefLayout)
}
func DecodeSidedefs(lump []byte) ([]Sidedef, error) {
	return decodeRecords[Sidedef](lump, sidedefLayout)
}
func DecodeMapVertexes(lump []byte) ([]MapVertex, error) {
	return decodeRecords[MapVertex](lump, vertexLayout)
}
func DecodeSegs(lump []byte) ([]Seg, error) { return decodeRecords[Seg](lump, segLayout) }
func DecodeSubSectors(lump []byte) ([]SubSector, error) {
	return decodeRecords[SubSector](lump, subSectorLayout)
}
func DecodeNodes(lump []byte) ([]Node, error)     { return decodeRecords[Node](lump, nodeLayout) }
func DecodeSectors(lump []byte) ([]Sector, error) { return decodeRecords[Sector](lump, sectorLayout) }

// DecodeVertexes decodes a VERTEXES lump and multiplies each coordinate by scale
func DecodeVertexes(lump []byte, scale float32) ([]Vertex, error) {
	raw, err := DecodeMapVertexes(lump)
	if err != nil {
		return nil, err
	}
	vertexes := make([]Vertex, len(raw))
	for i, v := range raw {
		vertexes[i] = Vertex{X: scaled(v.X, scale), Y: scaled(v.Y, scale)}
	}
	return vertexes, nil
}

func EncodeThings(r []Thing) []byte          { return encodeRecords(r, thingLayout) }
func EncodeLinedefs(r []Linedef) []byte      { return encodeRecords(r, linedefLayout) }
func EncodeSidedefs(r []Sidedef) []byte      { return encodeRecords(r, sidedefLayout) }
func EncodeMapVertexes(r []MapVertex) []byte { return encodeRecords(r, vertexLayout) }
func EncodeSegs(r []Seg) []byte              { return encodeRecords(r, segLayout) }
func EncodeSubSectors(r []SubSector) []byte  { return encodeRecords(r, subSectorLayout) }
func EncodeNodes(r []Node) []byte            { return encodeRecords(r, nodeLayout) }
func EncodeSectors(r []Sector) []byte        { return encodeRecords(r, sectorLayout) }
