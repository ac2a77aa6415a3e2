package sink

import (
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	wad "github.com/stuarthighley/wadlines"
)

// GLTF writes the level as a single line-list mesh on the y = 0 plane with per-vertex colors.
// Binary selects .glb output.
type GLTF struct {
	W      io.Writer
	Binary bool
	ByKind bool
}

// Document builds the glTF document without encoding it
func (g *GLTF) Document(level string, lines []wad.Line) *gltf.Document {
	doc := gltf.NewDocument()
	if len(lines) == 0 {
		return doc
	}

	positions := make([][3]float32, 0, 2*len(lines))
	colors := make([][4]uint8, 0, 2*len(lines))
	for _, l := range lines {
		c := LineColor(l, g.ByKind)
		rgba := [4]uint8{c.R, c.G, c.B, c.A}
		positions = append(positions, [3]float32(Plane(l.From)), [3]float32(Plane(l.To)))
		colors = append(colors, rgba, rgba)
	}

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "lines",
		DoubleSided: true,
	})
	material := uint32(len(doc.Materials) - 1)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: level,
		Primitives: []*gltf.Primitive{
			{
				Mode:     gltf.PrimitiveLines,
				Material: &material,
				Attributes: map[string]uint32{
					"POSITION": modeler.WritePosition(doc, positions),
					"COLOR_0":  modeler.WriteColor(doc, colors),
				},
			},
		},
	})
	mesh := uint32(len(doc.Meshes) - 1)

	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: level, Mesh: &mesh})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	return doc
}

func (g *GLTF) DrawLines(level string, lines []wad.Line) error {
	encoder := gltf.NewEncoder(g.W)
	encoder.AsBinary = g.Binary
	return encoder.Encode(g.Document(level, lines))
}
