package wad

import "github.com/pkg/errors"

const blockListEnd = 0xffff

// BlockMap is level data created from the axis aligned bounding box of the map, a rectangular
// array of 128x128 blocks. Used to speed up collision detection by spatial subdivision in 2D.
type BlockMap struct {
	OriginX, OriginY    int16
	NumColumns, NumRows int
	Blocks              [][]int // Linedef numbers per block, row major from the origin
}

// Block returns the linedef numbers in the specified block
func (b *BlockMap) Block(x, y int) []int {
	if x < 0 || y < 0 || x >= b.NumColumns || y >= b.NumRows {
		return nil
	}
	return b.Blocks[y*b.NumColumns+x]
}

// DecodeBlockMap decodes a BLOCKMAP lump. Each block list starts with a 0 word and ends with
// 0xFFFF; the leading 0 is not a linedef.
func DecodeBlockMap(lump []byte) (*BlockMap, error) {
	c := NewCursor(lump)
	var header [4]int16
	for i := range header {
		v, err := c.ReadI16()
		if err != nil {
			return nil, errors.Wrapf(ErrTruncatedLump, "BLOCKMAP header: %v", err)
		}
		header[i] = v
	}
	blockMap := &BlockMap{
		OriginX:    header[0],
		OriginY:    header[1],
		NumColumns: int(uint16(header[2])),
		NumRows:    int(uint16(header[3])),
	}

	// Offsets are in 16-bit words from the start of the lump
	count := blockMap.NumColumns * blockMap.NumRows
	if 2*count > c.Remaining() {
		return nil, errors.Wrapf(ErrTruncatedLump, "BLOCKMAP: %dx%d blocks need %d offset bytes, have %d",
			blockMap.NumColumns, blockMap.NumRows, 2*count, c.Remaining())
	}
	offsets := make([]uint16, count)
	for i := range offsets {
		o, err := c.ReadU16()
		if err != nil {
			return nil, errors.Wrapf(ErrTruncatedLump, "BLOCKMAP offset %d of %d: %v", i, count, err)
		}
		offsets[i] = o
	}

	blockMap.Blocks = make([][]int, count)
	for i, o := range offsets {
		if err := c.Seek(2 * int(o)); err != nil {
			return nil, errors.Wrapf(ErrTruncatedLump, "BLOCKMAP block %d: %v", i, err)
		}
		lines, err := readBlockList(c)
		if err != nil {
			return nil, errors.Wrapf(ErrTruncatedLump, "BLOCKMAP block %d: %v", i, err)
		}
		blockMap.Blocks[i] = lines
	}
	logger.Debugf("Read %v blocks", len(blockMap.Blocks))
	return blockMap, nil
}

func readBlockList(c *Cursor) ([]int, error) {
	first, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	if first == blockListEnd {
		return nil, nil
	}
	var lines []int
	if first != 0 {
		// Some node builders omit the leading 0
		lines = append(lines, int(first))
	}
	for {
		v, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		if v == blockListEnd {
			return lines, nil
		}
		lines = append(lines, int(v))
	}
}
