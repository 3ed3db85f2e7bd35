// Package viz renders ownership-tree snapshots taken with Owner.Graph, for
// debugging reactive graphs: a plain indented outline, a boxed drawing for
// terminals, and structured log output.
package viz

import (
	"log/slog"
	"strings"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/glint-dev/glint"
)

// Outline returns the snapshot as indented text, one node per line. The
// output is deterministic for a fully named graph, which makes it suitable
// for golden files.
func Outline(n *glint.GraphNode) string {
	var b strings.Builder
	outline(&b, n, 0)
	return b.String()
}

func outline(b *strings.Builder, n *glint.GraphNode, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(n.Kind)
	b.WriteString(" ")
	b.WriteString(n.Name)
	b.WriteString("\n")

	for _, child := range n.Children {
		outline(b, child, depth+1)
	}
}

// Render returns the snapshot drawn as a box tree for terminal output.
func Render(n *glint.GraphNode) string {
	t := tree.NewTree(tree.NodeString(label(n)))
	addChildren(t, n)
	return t.String()
}

func addChildren(t *tree.Tree, n *glint.GraphNode) {
	for i, child := range n.Children {
		t.AddChild(tree.NodeString(label(child)))
		sub, err := t.Child(i)
		if err != nil {
			continue
		}
		addChildren(sub, child)
	}
}

func label(n *glint.GraphNode) string {
	if n.Kind == "owner" {
		return n.Name
	}
	return n.Kind + " " + n.Name
}

// Dump logs every node of the snapshot to logger at debug level, one record
// per node with its kind, name and depth.
func Dump(logger *slog.Logger, n *glint.GraphNode) {
	dump(logger, n, 0)
}

func dump(logger *slog.Logger, n *glint.GraphNode, depth int) {
	logger.Debug("graph node",
		slog.String("kind", n.Kind),
		slog.String("name", n.Name),
		slog.Int("depth", depth),
		slog.Int("children", len(n.Children)),
	)

	for _, child := range n.Children {
		dump(logger, child, depth+1)
	}
}
