package tree

import (
	"context"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/gain"
	"github.com/yourbasic/bit"
	"go.uber.org/zap"
)

/*
Config holds the parameters for growing a tree.

MaxDepth limits the number of splits on any path from the root. Zero means
no limit. Branches reached when the limit runs out get a leaf with the
majority outcome of their samples.

ResolveExhausted makes branches for which no feature provides any gain
end in a leaf with the majority outcome of their samples. Otherwise those
branches are left unresolved and predictions reaching them fail with
ErrCannotPredictFromSample.

Logger receives debug entries for every node grown. Nil disables logging.
*/
type Config struct {
	MaxDepth         int
	ResolveExhausted bool
	Logger           *zap.Logger
}

type grower struct {
	ctx  context.Context
	cfg  Config
	set  *dataset.Set
	log  *zap.Logger
	tree *Tree
}

/*
Grow takes a context, a set of labelled samples and a Config and returns a
tree grown by recursively splitting the samples on the feature with the
greatest information gain.

A tree without root is returned when no feature provides any gain on the
whole set. An error is returned if the context is cancelled while growing.
*/
func Grow(ctx context.Context, s *dataset.Set, cfg Config) (*Tree, error) {
	g := &grower{
		ctx:  ctx,
		cfg:  cfg,
		set:  s,
		log:  cfg.Logger,
		tree: &Tree{Root: NoNode},
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = -1
	}
	root, _, err := g.develop(s.All(), gain.Columns(s), depth)
	if err != nil {
		return nil, err
	}
	g.tree.Root = root
	g.log.Debug("tree grown", zap.Int("nodes", len(g.tree.Nodes)), zap.Int("samples", s.Count()))
	return g.tree, nil
}

/*
develop adds a split node for the subset on the best of the active features
and develops its branches. It returns NoNode when no active feature
provides any gain, and NoNode along with true when a feature qualified but
the depth budget had already run out.
*/
func (g *grower) develop(ss dataset.Subset, active *bit.Set, depth int) (NodeID, bool, error) {
	if err := g.ctx.Err(); err != nil {
		return NoNode, false, err
	}
	col, ok := gain.Best(ss, active)
	if !ok {
		return NoNode, false, nil
	}
	if depth == 0 {
		return NoNode, true, nil
	}
	f := g.set.Feature(col)
	id := g.add(Node{
		Feature:   f,
		True:      NoNode,
		False:     NoNode,
		Weight:    ss.Count(),
		Positives: ss.Positives(),
	})
	g.log.Debug("split",
		zap.Int("node", int(id)),
		zap.String("feature", f.Name()),
		zap.Int("samples", ss.Count()),
		zap.Int("positives", ss.Positives()),
	)
	pos, neg := ss.Split(col)
	rest := new(bit.Set).Set(active).Delete(col)
	if depth > 0 {
		depth--
	}
	t, err := g.branch(pos, rest, depth)
	if err != nil {
		return NoNode, false, err
	}
	g.tree.Nodes[id].True = t
	f2, err := g.branch(neg, rest, depth)
	if err != nil {
		return NoNode, false, err
	}
	g.tree.Nodes[id].False = f2
	return id, false, nil
}

func (g *grower) branch(ss dataset.Subset, active *bit.Set, depth int) (NodeID, error) {
	positives, count := ss.Positives(), ss.Count()
	switch gain.Probability(positives, count-positives) {
	case 0:
		return g.leaf(ss, feature.English, Pure), nil
	case 1:
		return g.leaf(ss, feature.Dutch, Pure), nil
	}
	id, final, err := g.develop(ss, active, depth)
	if err != nil || id != NoNode {
		return id, err
	}
	if final {
		return g.leaf(ss, majority(ss), DepthLimit), nil
	}
	if g.cfg.ResolveExhausted {
		return g.leaf(ss, majority(ss), Exhausted), nil
	}
	g.log.Debug("unresolved branch", zap.Int("samples", count), zap.Int("positives", positives))
	return NoNode, nil
}

func (g *grower) leaf(ss dataset.Subset, o feature.Outcome, r LeafReason) NodeID {
	return g.add(Node{
		True:      NoNode,
		False:     NoNode,
		Outcome:   o,
		Reason:    r,
		Weight:    ss.Count(),
		Positives: ss.Positives(),
	})
}

func (g *grower) add(n Node) NodeID {
	g.tree.Nodes = append(g.tree.Nodes, n)
	return NodeID(len(g.tree.Nodes) - 1)
}

func majority(ss dataset.Subset) feature.Outcome {
	return feature.OutcomeFor(gain.ClassProbability(ss) >= 0.5)
}
