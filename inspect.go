package glint

import "github.com/glint-dev/glint/internal"

// GraphNode is a snapshot of one node in an owner's ownership tree, taken by
// Graph. Kind is "owner", "signal", "memo" or "effect"; Name is the WithName
// label when set, otherwise a generated kind#id.
type GraphNode = internal.InspectNode

// Graph captures the ownership tree rooted at this owner for debugging and
// visualization. The snapshot is detached: walking it takes no locks and
// observes no later changes.
func (o *Owner) Graph() *GraphNode {
	return o.owner.Inspect()
}
