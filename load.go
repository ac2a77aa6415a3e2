package wad

import (
	"io"

	"github.com/pkg/errors"
)

// Sink turns decoded lines into something visible. It is called once per load, and only when
// the whole level decoded.
type Sink interface {
	DrawLines(level string, lines []Line) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(level string, lines []Line) error

func (f SinkFunc) DrawLines(level string, lines []Line) error {
	return f(level, lines)
}

// LoadLevel reads a WAD from src and returns the lines of one level. On any error no lines are
// returned.
func LoadLevel(src io.Reader, level string, scale float32) ([]Line, error) {
	w, err := NewWADFromReader(src)
	if err != nil {
		return nil, err
	}
	return w.Lines(level, scale)
}

// LoadLevelFile is LoadLevel for a file on disk. The file is closed on every path.
func LoadLevelFile(filename, level string, scale float32) ([]Line, error) {
	w, err := NewWAD(filename)
	if err != nil {
		return nil, err
	}
	return w.Lines(level, scale)
}

// LoadLevelTo loads a level from a file and hands its lines to sink
func LoadLevelTo(filename, level string, scale float32, sink Sink) error {
	lines, err := LoadLevelFile(filename, level, scale)
	if err != nil {
		return err
	}
	if err := sink.DrawLines(normalizeName(level), lines); err != nil {
		return errors.Wrapf(err, "draw level %v", level)
	}
	return nil
}
