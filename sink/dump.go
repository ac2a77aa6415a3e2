package sink

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	wad "github.com/stuarthighley/wadlines"
)

// YAML writes the lines as a YAML document
type YAML struct {
	W io.Writer
}

type yamlLevel struct {
	Level  string     `yaml:"level"`
	Count  int        `yaml:"count"`
	Bounds yamlBounds `yaml:"bounds"`
	Lines  []yamlLine `yaml:"lines"`
}

type yamlBounds struct {
	Left   float32 `yaml:"left"`
	Bottom float32 `yaml:"bottom"`
	Right  float32 `yaml:"right"`
	Top    float32 `yaml:"top"`
}

type yamlLine struct {
	From   []float32 `yaml:"from,flow"`
	To     []float32 `yaml:"to,flow"`
	Marked bool      `yaml:"marked,omitempty"`
	Type   int16     `yaml:"type,omitempty"`
}

func (y *YAML) DrawLines(level string, lines []wad.Line) error {
	bbox := wad.Bounds(lines)
	doc := yamlLevel{
		Level:  level,
		Count:  len(lines),
		Bounds: yamlBounds{bbox.Left, bbox.Bottom, bbox.Right, bbox.Top},
		Lines:  make([]yamlLine, len(lines)),
	}
	for i, l := range lines {
		doc.Lines[i] = yamlLine{
			From:   []float32{l.From.X, l.From.Y},
			To:     []float32{l.To.X, l.To.Y},
			Marked: l.Marked,
			Type:   l.Type,
		}
	}

	encoder := yaml.NewEncoder(y.W)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return err
	}
	return encoder.Close()
}

var spewConfig = func() *spew.ConfigState {
	c := spew.NewDefaultConfig()
	c.DisableCapacities = true
	c.DisablePointerAddresses = true
	return c
}()

// Dump writes a spew dump of the lines, for debugging
type Dump struct {
	W io.Writer
}

func (d *Dump) DrawLines(level string, lines []wad.Line) error {
	if _, err := fmt.Fprintf(d.W, "Level %s: %d lines\n", level, len(lines)); err != nil {
		return err
	}
	spewConfig.Fdump(d.W, lines)
	return nil
}
