package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/pkg/errors"
)

// Tree represents a decision tree deciding the language of samples. Its
// nodes are stored in a slice and refer to each other by position.
type Tree struct {
	Nodes []Node
	Root  NodeID
}

// New takes a slice of nodes and the ID of the root node and returns a tree
// composed of them.
func New(nodes []Node, root NodeID) *Tree {
	return &Tree{nodes, root}
}

// Empty returns whether the tree has no root
func (t *Tree) Empty() bool {
	return t == nil || t.Root == NoNode
}

// Node returns the node with the given id or nil if the tree has no such node
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.Nodes) {
		return nil
	}
	return &t.Nodes[id]
}

// Predict takes a sample and returns the outcome according to the tree and an
// error if the prediction could not be made.
func (t *Tree) Predict(s feature.Sample) (feature.Outcome, error) {
	if t.Empty() {
		return "", ErrEmptyTree
	}
	id := t.Root
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Node(id)
		if n == nil {
			return "", errors.Wrapf(ErrInvalidTree, "node %d not found", id)
		}
		if n.IsLeaf() {
			return n.Outcome, nil
		}
		v, err := s.ValueFor(n.Feature)
		if err != nil {
			return "", err
		}
		id = n.Child(v)
		if id == NoNode {
			return "", ErrCannotPredictFromSample
		}
	}
	return "", errors.Wrap(ErrInvalidTree, "cycle found")
}

/*
Validate checks that every node of the tree is reachable from the root
exactly once, that splits refer to existing nodes and that leaves have a
valid outcome.
*/
func (t *Tree) Validate() error {
	if t.Empty() {
		if t != nil && len(t.Nodes) > 0 {
			return errors.Wrap(ErrInvalidTree, "nodes found on a tree without root")
		}
		return nil
	}
	visited := make([]bool, len(t.Nodes))
	pending := []NodeID{t.Root}
	for len(pending) > 0 {
		id := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		n := t.Node(id)
		if n == nil {
			return errors.Wrapf(ErrInvalidTree, "node %d not found", id)
		}
		if visited[id] {
			return errors.Wrapf(ErrInvalidTree, "node %d reached more than once", id)
		}
		visited[id] = true
		if n.IsLeaf() {
			if !n.Outcome.Valid() {
				return errors.Wrapf(ErrInvalidTree, "leaf %d has unknown outcome %q", id, n.Outcome)
			}
			continue
		}
		for _, c := range []NodeID{n.False, n.True} {
			if c != NoNode {
				pending = append(pending, c)
			}
		}
	}
	for id, ok := range visited {
		if !ok {
			return errors.Wrapf(ErrInvalidTree, "node %d is not reachable from the root", id)
		}
	}
	return nil
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true. The true
// branch is always traversed before the false one.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, NodeID, *Node) error) error {
	if t.Empty() {
		return nil
	}
	return t.traverse(ctx, t.Root, bottomup, f, 0)
}

func (t *Tree) traverse(ctx context.Context, id NodeID, bottomup bool, f func(context.Context, NodeID, *Node) error, depth int) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	n := t.Node(id)
	if n == nil {
		return errors.Wrapf(ErrInvalidTree, "node %d not found", id)
	}
	if depth > len(t.Nodes) {
		return errors.Wrap(ErrInvalidTree, "cycle found")
	}
	if !bottomup {
		if err = f(ctx, id, n); err != nil {
			return err
		}
	}
	if !n.IsLeaf() {
		for _, c := range []NodeID{n.True, n.False} {
			if c == NoNode {
				continue
			}
			if err = t.traverse(ctx, c, bottomup, f, depth+1); err != nil {
				return err
			}
		}
	}
	if bottomup {
		err = f(ctx, id, n)
	}
	return err
}

/*
Branches takes the id of a split node and returns a reference for each of its
branches: the name of the feature the child node splits on, the terminal
marker of a child leaf, or an empty string for an unresolved branch.
*/
func (t *Tree) Branches(id NodeID) (string, string) {
	n := t.Node(id)
	if n == nil || n.IsLeaf() {
		return "", ""
	}
	return t.branchRef(n.True, true), t.branchRef(n.False, false)
}

func (t *Tree) branchRef(id NodeID, branch bool) string {
	c := t.Node(id)
	if c == nil {
		return ""
	}
	if c.IsLeaf() {
		return Marker(branch, c.Outcome)
	}
	return c.Feature.Name()
}

/*
Mapping takes a context and returns the tree as a mapping from every split
feature to the references of its two branches, one entry per line in
top-down order. The first entry holds the feature of the root keyed by the
null parent. Unresolved branches are shown as "-".
*/
func (t *Tree) Mapping(ctx context.Context) (string, error) {
	if t.Empty() {
		return "{}\n", nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "{\n  null: %s\n", t.branchRef(t.Root, true))
	err := t.Traverse(ctx, false, func(_ context.Context, id NodeID, n *Node) error {
		if n.IsLeaf() {
			return nil
		}
		tb, fb := t.Branches(id)
		fmt.Fprintf(&sb, "  %s: {True: %s, False: %s}\n", n.Feature.Name(), orUnresolved(tb), orUnresolved(fb))
		return nil
	})
	if err != nil {
		return "", err
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

func orUnresolved(ref string) string {
	if ref == "" {
		return "-"
	}
	return ref
}

func (t *Tree) String() string {
	if t.Empty() {
		return "[empty]\n"
	}
	return t.subtreeString(t.Root, "")
}

func (t *Tree) subtreeString(id NodeID, branch string) string {
	n := t.Node(id)
	if n == nil {
		return fmt.Sprintf("%s?\n", branch)
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%s%s\n", branch, n)
	}
	result := fmt.Sprintf("%s[%v]\n|\n", branch, n)
	children := []struct {
		id     NodeID
		branch string
	}{{n.True, "True: "}, {n.False, "False: "}}
	for i, c := range children {
		var sub string
		if c.id == NoNode {
			sub = fmt.Sprintf("%s-\n", c.branch)
		} else {
			sub = t.subtreeString(c.id, c.branch)
		}
		for j, line := range strings.Split(sub, "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
