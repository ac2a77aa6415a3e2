package wad

import "github.com/pkg/errors"

// Level holds every decoded table of one map. Records are indexed by their position in the
// lump and are not modified after decoding.
type Level struct {
	Name       string
	Things     []Thing
	Linedefs   []Linedef
	Sidedefs   []Sidedef
	Vertexes   []Vertex
	Segs       []Seg
	SubSectors []SubSector
	Nodes      []Node
	Sectors    []Sector
	Reject     Reject
	BlockMap   *BlockMap
}

// BSPRoot returns the root node, which the node builder writes last
func (l *Level) BSPRoot() (Node, bool) {
	if len(l.Nodes) == 0 {
		return Node{}, false
	}
	return l.Nodes[len(l.Nodes)-1], true
}

// Lines resolves the level's linedefs into renderable lines
func (l *Level) Lines() ([]Line, error) {
	return BuildLines(l.Vertexes, l.Linedefs)
}

// readLevel decodes the lumps of one level block
func (w *WAD) readLevel(name string, lumps []Lump, scale float32) (*Level, error) {
	level := &Level{Name: name}
	var rejectLump []byte
	var haveLinedefs, haveVertexes bool
	for _, lumpInfo := range lumps {
		lump := w.lumpData(lumpInfo)
		var err error
		switch lumpInfo.Name {
		case "THINGS":
			level.Things, err = DecodeThings(lump)
		case "LINEDEFS":
			level.Linedefs, err = DecodeLinedefs(lump)
			haveLinedefs = true
		case "SIDEDEFS":
			level.Sidedefs, err = DecodeSidedefs(lump)
		case "VERTEXES":
			level.Vertexes, err = DecodeVertexes(lump, scale)
			haveVertexes = true
		case "SEGS":
			level.Segs, err = DecodeSegs(lump)
		case "SSECTORS":
			level.SubSectors, err = DecodeSubSectors(lump)
		case "NODES":
			level.Nodes, err = DecodeNodes(lump)
		case "SECTORS":
			level.Sectors, err = DecodeSectors(lump)
		case "REJECT":
			// Sized by the sector count, which may come later in the block
			rejectLump = lump
		case "BLOCKMAP":
			// Only collision code needs it; a broken one leaves the geometry intact
			if len(lump) > 0 {
				if level.BlockMap, err = DecodeBlockMap(lump); err != nil {
					logger.Debugf("Level %v: skipping BLOCKMAP: %v", name, err)
					level.BlockMap, err = nil, nil
				}
			}
		default:
			logger.Debugf("Unhandled lump %s", lumpInfo.Name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "level %v", name)
		}
	}

	if !haveLinedefs {
		return nil, errors.Wrapf(ErrMissingLump, "level %v: LINEDEFS", name)
	}
	if !haveVertexes {
		return nil, errors.Wrapf(ErrMissingLump, "level %v: VERTEXES", name)
	}

	level.Reject = DecodeReject(rejectLump, len(level.Sectors))
	if bad := level.checkReferences(); bad > 0 {
		logger.Debugf("Level %v: %v bad references", name, bad)
	}

	logger.Debugf("Read level %v: %v things, %v linedefs, %v sidedefs, %v vertexes, %v segs, "+
		"%v sub sectors, %v nodes, %v sectors", name, len(level.Things), len(level.Linedefs),
		len(level.Sidedefs), len(level.Vertexes), len(level.Segs), len(level.SubSectors),
		len(level.Nodes), len(level.Sectors))
	return level, nil
}
