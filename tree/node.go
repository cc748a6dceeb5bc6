package tree

import (
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
)

/*
NodeID identifies a node by its position in the node slice of a tree
*/
type NodeID int

// NoNode is the NodeID used for branches that lead to no node
const NoNode NodeID = -1

/*
LeafReason describes why a node was made a leaf
*/
type LeafReason string

const (
	// Pure leaves hold samples with a single label
	Pure = LeafReason("pure")
	// DepthLimit leaves stand where the depth budget ran out
	DepthLimit = LeafReason("depth")
	// Exhausted leaves stand where no feature could split the samples any further
	Exhausted = LeafReason("exhausted")
)

/*
Node is a node of the tree: either a split on a feature or a leaf with
an outcome.
*/
type Node struct {
	// The feature this node splits on. Nil for leaves.
	Feature feature.Feature
	// The nodes to continue with for samples that have and that do not
	// have the feature. NoNode when the branch was left unresolved.
	True, False NodeID
	// The outcome for samples reaching a leaf.
	Outcome feature.Outcome
	// Why the node was made a leaf.
	Reason LeafReason
	// The number of training samples that reached the node, and how many
	// of those were labelled true.
	Weight    int
	Positives int
}

// IsLeaf returns whether the node is a leaf
func (n *Node) IsLeaf() bool {
	return n.Feature == nil
}

// Child returns the node to continue with for the given feature value
func (n *Node) Child(value bool) NodeID {
	if value {
		return n.True
	}
	return n.False
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s (%s, %d/%d)", n.Outcome, n.Reason, n.Positives, n.Weight)
	}
	return fmt.Sprintf("%s (%d/%d)", n.Feature.Name(), n.Positives, n.Weight)
}

/*
Marker returns the encoding of a leaf reached through a branch: the branch
value followed by the outcome, as in "True:is_nl".
*/
func Marker(branch bool, o feature.Outcome) string {
	if branch {
		return fmt.Sprintf("True:%s", o)
	}
	return fmt.Sprintf("False:%s", o)
}
