package json

import (
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/tree"
)

type node struct {
	Feature   string          `json:"feature,omitempty"`
	True      *tree.NodeID    `json:"true,omitempty"`
	False     *tree.NodeID    `json:"false,omitempty"`
	Outcome   feature.Outcome `json:"outcome,omitempty"`
	Reason    tree.LeafReason `json:"reason,omitempty"`
	Weight    int             `json:"weight"`
	Positives int             `json:"positives"`
}

func encodeNode(n *tree.Node) *node {
	jn := &node{
		Outcome:   n.Outcome,
		Reason:    n.Reason,
		Weight:    n.Weight,
		Positives: n.Positives,
	}
	if !n.IsLeaf() {
		t, f := n.True, n.False
		jn.Feature = n.Feature.Name()
		jn.True, jn.False = &t, &f
	}
	return jn
}

func decodeNode(i int, jn *node) (tree.Node, error) {
	n := tree.Node{
		True:      tree.NoNode,
		False:     tree.NoNode,
		Weight:    jn.Weight,
		Positives: jn.Positives,
	}
	if jn.Feature == "" {
		if jn.True != nil || jn.False != nil {
			return n, fmt.Errorf("node %d: branches on a node without feature", i)
		}
		n.Outcome = jn.Outcome
		n.Reason = jn.Reason
		return n, nil
	}
	if jn.True == nil || jn.False == nil {
		return n, fmt.Errorf("node %d: split on %s without both branches", i, jn.Feature)
	}
	n.Feature = feature.NewBooleanFeature(jn.Feature)
	n.True, n.False = *jn.True, *jn.False
	return n, nil
}
