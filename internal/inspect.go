package internal

import "strconv"

// InspectNode is a point-in-time copy of one node in the ownership tree,
// safe to walk without holding any engine state.
type InspectNode struct {
	Kind string
	Name string

	Children []*InspectNode
}

// Inspect captures the ownership tree rooted at this owner: its signals,
// its computation scopes and nested owners, recursively.
func (o *Owner) Inspect() *InspectNode {
	mu.Lock()
	defer mu.Unlock()

	return o.inspect()
}

// inspect walks the tree. Caller holds mu.
func (o *Owner) inspect() *InspectNode {
	n := &InspectNode{Kind: "owner", Name: o.name}
	if n.Name == "" {
		n.Name = "owner#" + strconv.FormatUint(o.id, 10)
	}
	if o.comp != nil {
		n.Kind = kindLabel(o.comp.kind)
		n.Name = nodeLabel(n.Kind, &o.comp.node)
	}

	for _, s := range o.signals {
		n.Children = append(n.Children, &InspectNode{
			Kind: "signal",
			Name: nodeLabel("signal", &s.node),
		})
	}
	for _, child := range o.children {
		n.Children = append(n.Children, child.inspect())
	}
	return n
}

func kindLabel(k CompKind) string {
	if k == KindEffect {
		return "effect"
	}
	return "memo"
}

func nodeLabel(kind string, n *node) string {
	if n.name != "" {
		return n.name
	}
	return kind + "#" + strconv.FormatUint(n.id, 10)
}
