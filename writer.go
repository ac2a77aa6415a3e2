package wad

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// LumpData is a named lump to be written
type LumpData struct {
	Name string
	Data []byte
}

// WriteWAD writes an archive holding lumps in order: the header, the lump data, then the
// directory. Names are stored upper case and NUL padded.
func WriteWAD(w io.Writer, magic string, lumps []LumpData) error {
	if magic != "IWAD" && magic != "PWAD" {
		return errors.Wrapf(ErrBadMagic, "%q", magic)
	}

	var body bytes.Buffer
	infos := make([]Lump, len(lumps))
	for i, l := range lumps {
		if len(l.Name) == 0 || len(l.Name) > len(String8{}) {
			return errors.Errorf("lump %d: name %q must be 1 to 8 bytes", i, l.Name)
		}
		infos[i] = Lump{Name: normalizeName(l.Name), Filepos: headerSize + body.Len(), Size: len(l.Data)}
		body.Write(l.Data)
	}

	header := struct {
		Magic        [4]byte
		NumLumps     int32
		InfoTableOfs int32
	}{NumLumps: int32(len(lumps)), InfoTableOfs: int32(headerSize + body.Len())}
	copy(header.Magic[:], magic)
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	for _, info := range infos {
		entry := struct {
			Filepos int32
			Size    int32
			Name    String8
		}{int32(info.Filepos), int32(info.Size), NewString8(info.Name)}
		if err := binary.Write(w, binary.LittleEndian, &entry); err != nil {
			return err
		}
	}
	return nil
}
