package wad

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree prints the level's BSP tree in an indented format, right child first
func PrintTree(w io.Writer, l *Level) error {
	if _, ok := l.BSPRoot(); !ok {
		// A single sub-sector level has no nodes
		_, err := fmt.Fprintln(w, "- subsector 0")
		return err
	}

	var err error
	emit := func(prefix, format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, prefix+"- "+format+"\n", args...)
		}
	}

	// Every node is printed at most once. A node reached a second time is a corrupt NODES lump:
	// a cycle or a subtree shared by two parents.
	visited := make([]bool, len(l.Nodes))
	var printRecursive func(child uint16, depth int)
	printRecursive = func(child uint16, depth int) {
		prefix := strings.Repeat("   ", depth)
		index := ChildIndex(child)
		switch {
		case IsSubSectorChild(child):
			if index >= len(l.SubSectors) {
				emit(prefix, "subsector %d (missing)", index)
				return
			}
			s := l.SubSectors[index]
			emit(prefix, "subsector %d: %d segs from %d", index, s.NumSegs, s.FirstSeg)
		case index >= len(l.Nodes):
			emit(prefix, "node %d (missing)", index)
		case visited[index]:
			emit(prefix, "node %d (cycle)", index)
		default:
			visited[index] = true
			n := l.Nodes[index]
			emit(prefix, "node %d: (%d,%d) d(%d,%d)", index, n.X, n.Y, n.DX, n.DY)
			printRecursive(n.ChildR, depth+1)
			printRecursive(n.ChildL, depth+1)
		}
	}

	printRecursive(uint16(len(l.Nodes)-1), 0)
	return err
}
