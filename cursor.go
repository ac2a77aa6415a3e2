package wad

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Cursor is a sequential little-endian reader over a finite byte slice with an absolute
// position. Seeking past the end fails rather than clamping. A Cursor is not safe for
// concurrent use; each load gets its own.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at offset 0
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current absolute position
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the length of the underlying data
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Seek moves to an absolute offset. Seeking to exactly Len is allowed.
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > len(c.data) {
		return errors.Wrapf(ErrOutOfRange, "seek to %d of %d", offset, len(c.data))
	}
	c.pos = offset
	return nil
}

// Bytes returns the next n bytes without copying and advances past them
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "read %d bytes at %d of %d", n, c.pos, len(c.data))
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads both bytes as one two's complement int16
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadFixedString reads exactly n bytes as single-byte (ISO-8859-1) text. NUL and padding
// bytes are kept; use normalizeName or String8 to trim.
func (c *Cursor) ReadFixedString(n int) (string, error) {
	b, err := c.Bytes(n)
	if err != nil {
		return "", err
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrap(err, "decode fixed string")
	}
	return string(s), nil
}

// ReadString8 reads an eight byte name field
func (c *Cursor) ReadString8() (String8, error) {
	var s String8
	b, err := c.Bytes(len(s))
	if err != nil {
		return s, err
	}
	copy(s[:], b)
	return s, nil
}
