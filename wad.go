// Package wad decodes the level geometry of Doom's data archives, also known as WAD files, into
// line segments ready for rendering.
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html

package wad

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// WAD is a struct that represents Doom's data archive. The whole archive is held in memory, so
// a WAD is read only after construction and may be shared; every ReadLevel decodes with its
// own cursor.
type WAD struct {
	data []byte
	dir  *Directory
}

// NewWAD reads a WAD file into memory. The file is closed before NewWAD returns, whether or
// not the directory decodes.
func NewWAD(filename string) (*WAD, error) {
	logger.Debugf("Start reading WAD %v", filename)

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return NewWADFromReader(file)
}

// NewWADFromReader reads all of r and decodes its directory. r is not closed.
func NewWADFromReader(r io.Reader) (*WAD, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read wad")
	}
	return NewWADFromBytes(data)
}

// NewWADFromBytes decodes the directory of a WAD held in data. data must not be modified
// afterwards.
func NewWADFromBytes(data []byte) (*WAD, error) {
	dir, err := ReadDirectory(data)
	if err != nil {
		return nil, err
	}
	return &WAD{data: data, dir: dir}, nil
}

// Header returns the decoded WAD header
func (w *WAD) Header() Header {
	return w.dir.Header
}

// Lumps returns the directory entries in file order
func (w *WAD) Lumps() []Lump {
	return w.dir.Lumps
}

// LevelNames returns a slice of level names found in the WAD archive.
func (w *WAD) LevelNames() []string {
	return w.dir.LevelNames()
}

// LumpData returns the contents of the last lump called name
func (w *WAD) LumpData(name string) ([]byte, bool) {
	lump, ok := w.dir.Lump(name)
	if !ok {
		return nil, false
	}
	return w.lumpData(lump), true
}

// lumpData slices a lump out of the archive. Bounds were checked by ReadDirectory.
func (w *WAD) lumpData(lump Lump) []byte {
	return w.data[lump.Filepos : lump.Filepos+lump.Size]
}

// ReadLevel reads level data from WAD archive and returns a Level struct. Vertex coordinates
// are multiplied by scale.
func (w *WAD) ReadLevel(name string, scale float32) (*Level, error) {
	logger.Debugf("Reading Level %v ...", name)

	lumps, err := w.dir.LevelLumps(name)
	if err != nil {
		return nil, err
	}
	return w.readLevel(normalizeName(name), lumps, scale)
}

// Lines reads a level and builds its wall lines
func (w *WAD) Lines(name string, scale float32) ([]Line, error) {
	level, err := w.ReadLevel(name, scale)
	if err != nil {
		return nil, err
	}
	return level.Lines()
}
