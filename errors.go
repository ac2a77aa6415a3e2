package wad

import "github.com/pkg/errors"

// Load errors. Every failure aborts the load; callers match with errors.Is.
var (
	ErrUnexpectedEOF           = errors.New("unexpected end of data")
	ErrOutOfRange              = errors.New("offset out of range")
	ErrBadMagic                = errors.New("bad magic")
	ErrMalformedDirectory      = errors.New("malformed directory")
	ErrLevelNotFound           = errors.New("level not found")
	ErrMissingLump             = errors.New("missing lump")
	ErrTruncatedLump           = errors.New("truncated lump")
	ErrDanglingVertexReference = errors.New("dangling vertex reference")
)
