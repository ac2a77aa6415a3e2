package sink

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	wad "github.com/stuarthighley/wadlines"
)

// Options configure the sinks built by New
type Options struct {
	Width, Height int
	LineWidth     float64
	ByKind        bool
}

type format struct {
	contentType string
	build       func(w io.Writer, o Options) wad.Sink
}

var formats = map[string]format{
	"svg": {"image/svg+xml", func(w io.Writer, o Options) wad.Sink {
		return &SVG{W: w, Width: o.Width, Height: o.Height, StrokeWidth: o.LineWidth, ByKind: o.ByKind}
	}},
	"png": {"image/png", func(w io.Writer, o Options) wad.Sink {
		return &PNG{W: w, Width: o.Width, Height: o.Height, LineWidth: o.LineWidth, ByKind: o.ByKind}
	}},
	"gltf": {"model/gltf+json", func(w io.Writer, o Options) wad.Sink {
		return &GLTF{W: w, ByKind: o.ByKind}
	}},
	"glb": {"model/gltf-binary", func(w io.Writer, o Options) wad.Sink {
		return &GLTF{W: w, Binary: true, ByKind: o.ByKind}
	}},
	"yaml": {"application/yaml", func(w io.Writer, o Options) wad.Sink {
		return &YAML{W: w}
	}},
	"dump": {"text/plain; charset=utf-8", func(w io.Writer, o Options) wad.Sink {
		return &Dump{W: w}
	}},
}

// ErrUnknownFormat is returned by New for a format it does not know
var ErrUnknownFormat = errors.New("unknown format")

// New returns the sink for a format name, writing to w
func New(name string, w io.Writer, o Options) (wad.Sink, error) {
	f, ok := formats[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
	return f.build(w, o), nil
}

// ContentType returns the MIME type of a format's output
func ContentType(name string) string {
	return formats[name].contentType
}

// Formats returns the known format names, sorted
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
