package wad

import (
	"bytes"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	headerSize   = 12
	lumpInfoSize = 16
)

// Header is the 12 byte WAD header
type Header struct {
	Magic        string // "IWAD" or "PWAD"
	NumLumps     int
	InfoTableOfs int
}

// Lump is one directory entry
type Lump struct {
	Name    string // Normalized: cut at NUL, right-trimmed, upper case
	Filepos int
	Size    int
}

// WAD eight-character string type. Null-terminated for short strings.
type String8 [8]byte

// String converts String8 to string
func (s String8) String() string {
	i := bytes.IndexByte(s[:], 0)
	if i == -1 {
		i = len(s)
	}
	return string(s[0:i])
}

// NewString8 pads or truncates name to eight bytes
func NewString8(name string) String8 {
	var s String8
	copy(s[:], name)
	return s
}

// normalizeName turns a raw fixed-width name into the form used for lookups. Anything from the
// first NUL on is padding, as are trailing spaces. Any other trailing byte is part of the name:
// "E1M1-" and "E1M1" are different lumps.
func normalizeName(raw string) string {
	if i := strings.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return strings.ToUpper(strings.TrimRight(raw, " "))
}

// Level data lumps, in the order the engine writes them
var structuralLumps = []string{
	"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SEGS",
	"SSECTORS", "NODES", "SECTORS", "REJECT", "BLOCKMAP",
}

func isStructural(name string) bool {
	for _, s := range structuralLumps {
		if s == name {
			return true
		}
	}
	// Hexen-format maps carry this after BLOCKMAP; it belongs to the level but is not decoded
	return name == "BEHAVIOR"
}

// Directory is the decoded header plus every lump entry in file order
type Directory struct {
	Header   Header
	Lumps    []Lump
	Marker   Lump // First lump in the directory
	lumpNums map[string]int
}

// ReadDirectory decodes the header and lump directory of a WAD held in data
func ReadDirectory(data []byte) (*Directory, error) {
	c := NewCursor(data)
	header, err := readHeader(c)
	if err != nil {
		return nil, err
	}

	// The whole directory must fit before anything is read from it
	end := int64(header.InfoTableOfs) + int64(header.NumLumps)*lumpInfoSize
	if header.NumLumps < 0 || header.InfoTableOfs < 0 || end > int64(len(data)) {
		return nil, errors.Wrapf(ErrMalformedDirectory, "%d lumps at offset %d exceed %d bytes",
			header.NumLumps, header.InfoTableOfs, len(data))
	}
	if err := c.Seek(header.InfoTableOfs); err != nil {
		return nil, errors.Wrapf(ErrMalformedDirectory, "%v", err)
	}

	d := &Directory{
		Header:   header,
		Lumps:    make([]Lump, header.NumLumps),
		lumpNums: make(map[string]int, header.NumLumps),
	}
	for i := range d.Lumps {
		lump, err := readLumpInfo(c)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedDirectory, "entry %d: %v", i, err)
		}
		if lump.Filepos < 0 || lump.Size < 0 || int64(lump.Filepos)+int64(lump.Size) > int64(len(data)) {
			return nil, errors.Wrapf(ErrMalformedDirectory, "entry %d (%q) spans %d+%d of %d bytes",
				i, lump.Name, lump.Filepos, lump.Size, len(data))
		}
		d.Lumps[i] = lump
		d.lumpNums[lump.Name] = i
	}
	if len(d.Lumps) > 0 {
		d.Marker = d.Lumps[0]
	}
	logger.Debugf("Read %v directory: %v lumps, marker %q", header.Magic, len(d.Lumps), d.Marker.Name)
	return d, nil
}

func readHeader(c *Cursor) (Header, error) {
	if c.Len() < headerSize {
		return Header{}, errors.Wrapf(ErrMalformedDirectory, "header needs %d bytes, have %d", headerSize, c.Len())
	}
	magic, err := c.ReadFixedString(4)
	if err != nil {
		return Header{}, err
	}
	if magic != "IWAD" && magic != "PWAD" {
		return Header{}, errors.Wrapf(ErrBadMagic, "%q", magic)
	}
	numLumps, err := c.ReadI32()
	if err != nil {
		return Header{}, err
	}
	infoTableOfs, err := c.ReadI32()
	if err != nil {
		return Header{}, err
	}
	return Header{Magic: magic, NumLumps: int(numLumps), InfoTableOfs: int(infoTableOfs)}, nil
}

func readLumpInfo(c *Cursor) (Lump, error) {
	filepos, err := c.ReadI32()
	if err != nil {
		return Lump{}, err
	}
	size, err := c.ReadI32()
	if err != nil {
		return Lump{}, err
	}
	name, err := c.ReadFixedString(8)
	if err != nil {
		return Lump{}, err
	}
	return Lump{Name: normalizeName(name), Filepos: int(filepos), Size: int(size)}, nil
}

// Lump returns the last lump with the given name, as the engine does for overrides
func (d *Directory) Lump(name string) (Lump, bool) {
	i, ok := d.lumpNums[normalizeName(name)]
	if !ok {
		return Lump{}, false
	}
	return d.Lumps[i], true
}

// LevelNames returns the sorted, distinct names of all lumps directly followed by level data
func (d *Directory) LevelNames() []string {
	var result []string
	for i := 0; i+1 < len(d.Lumps); i++ {
		if !isStructural(d.Lumps[i].Name) && isStructural(d.Lumps[i+1].Name) {
			result = append(result, d.Lumps[i].Name)
		}
	}
	sort.Strings(result)
	return slices.Compact(result)
}

// LevelLumps returns the contiguous block of level data lumps after the first marker named
// name. It runs over the complete lump list, so the block ends at the first lump that is not
// level data however the lumps inside it are ordered. A name with no level data after it is
// not a level.
func (d *Directory) LevelLumps(name string) ([]Lump, error) {
	name = normalizeName(name)
	start := -1
	for i, lump := range d.Lumps {
		if lump.Name == name && !isStructural(lump.Name) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, errors.Wrapf(ErrLevelNotFound, "%q", name)
	}

	end := start + 1
	for end < len(d.Lumps) && isStructural(d.Lumps[end].Name) {
		end++
	}
	if end == start+1 {
		// PLAYPAL, ENDOOM and friends
		return nil, errors.Wrapf(ErrLevelNotFound, "%q has no level data", name)
	}
	return d.Lumps[start+1 : end], nil
}
