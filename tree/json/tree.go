/*
Package json serializes trees as JSON.

A tree is serialized as a JSON object with the following fields:
  - "root": the position of the root node in the node array, or -1 for
    an empty tree
  - "nodes": an array with the nodes of the tree. Splits carry the name of
    their "feature" and the positions of their "true" and "false" children
    (-1 for unresolved branches). Leaves carry their "outcome" and the
    "reason" they were made leaves. Every node carries the "weight" and
    "positives" training sample counts.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/tree"
)

type jsonTree struct {
	Root  tree.NodeID `json:"root"`
	Nodes []*node     `json:"nodes"`
}

/*
Marshal takes a tree and returns its JSON serialization
*/
func Marshal(t *tree.Tree) ([]byte, error) {
	jt := &jsonTree{Root: tree.NoNode, Nodes: []*node{}}
	if t != nil {
		jt.Root = t.Root
		for i := range t.Nodes {
			jt.Nodes = append(jt.Nodes, encodeNode(&t.Nodes[i]))
		}
	}
	return json.Marshal(jt)
}

/*
Unmarshal takes the JSON serialization of a tree and returns the tree
or an error if it cannot be parsed or the tree is not valid.
*/
func Unmarshal(data []byte) (*tree.Tree, error) {
	jt := &jsonTree{}
	if err := json.Unmarshal(data, jt); err != nil {
		return nil, err
	}
	return fromJSONTree(jt)
}

/*
WriteJSONTree takes an io.Writer and a tree and serializes the given tree
as JSON onto the io.Writer.
*/
func WriteJSONTree(w io.Writer, t *tree.Tree) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

/*
ReadJSONTree takes an io.Reader and returns the tree serialized as JSON on
it. An error is returned if the JSON cannot be read from the io.Reader,
unmarshalled or if it does not describe a valid tree.
*/
func ReadJSONTree(r io.Reader) (*tree.Tree, error) {
	jt := &jsonTree{}
	if err := json.NewDecoder(r).Decode(jt); err != nil {
		return nil, err
	}
	return fromJSONTree(jt)
}

func fromJSONTree(jt *jsonTree) (*tree.Tree, error) {
	nodes := make([]tree.Node, 0, len(jt.Nodes))
	for i, jn := range jt.Nodes {
		if jn == nil {
			return nil, fmt.Errorf("node %d is null", i)
		}
		n, err := decodeNode(i, jn)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		nodes = nil
	}
	t := tree.New(nodes, jt.Root)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
