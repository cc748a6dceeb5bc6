package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/gain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSet(t *testing.T, names []string, rows ...[]bool) *dataset.Set {
	features := make([]feature.Feature, len(names))
	for i, n := range names {
		features[i] = feature.NewBooleanFeature(n)
	}
	samples := make([]dataset.Sample, len(rows))
	for i, r := range rows {
		values := map[string]bool{feature.LabelName: r[len(r)-1]}
		for j, n := range names {
			values[n] = r[j]
		}
		samples[i] = dataset.NewSample(values)
	}
	s, err := dataset.New(features, samples)
	require.NoError(t, err)
	return s
}

func sample(values map[string]bool) feature.Sample {
	return dataset.NewSample(values)
}

func TestGrowSingleFeature(t *testing.T) {
	s := buildSet(t, []string{"f1"},
		[]bool{true, true},
		[]bool{false, false},
		[]bool{true, true},
		[]bool{false, false},
	)
	tr, err := Grow(context.Background(), s, Config{})
	require.NoError(t, err)
	require.False(t, tr.Empty())
	require.Len(t, tr.Nodes, 3)

	root := tr.Node(tr.Root)
	assert.Equal(t, "f1", root.Feature.Name())
	assert.Equal(t, 4, root.Weight)
	assert.Equal(t, 2, root.Positives)
	tb, fb := tr.Branches(tr.Root)
	assert.Equal(t, "True:is_nl", tb)
	assert.Equal(t, "False:is_en", fb)

	o, err := tr.Predict(sample(map[string]bool{"f1": true}))
	require.NoError(t, err)
	assert.Equal(t, feature.Dutch, o)
	o, err = tr.Predict(sample(map[string]bool{"f1": false}))
	require.NoError(t, err)
	assert.Equal(t, feature.English, o)

	assert.NoError(t, tr.Validate())
	assert.Contains(t, tr.String(), "True: is_nl")
}

func TestGrowWithoutGain(t *testing.T) {
	s := buildSet(t, []string{"f1"},
		[]bool{true, true},
		[]bool{true, false},
	)
	tr, err := Grow(context.Background(), s, Config{})
	require.NoError(t, err)
	assert.True(t, tr.Empty())
	_, err = tr.Predict(sample(map[string]bool{"f1": true}))
	assert.Equal(t, ErrEmptyTree, err)
}

func conjunctionSet(t *testing.T) *dataset.Set {
	return buildSet(t, []string{"f1", "f2"},
		[]bool{true, true, true},
		[]bool{true, false, false},
		[]bool{false, true, false},
		[]bool{false, false, false},
		[]bool{true, true, true},
		[]bool{true, false, false},
		[]bool{false, true, false},
		[]bool{false, false, false},
	)
}

func TestGrowUnlimitedDepth(t *testing.T) {
	tr, err := Grow(context.Background(), conjunctionSet(t), Config{})
	require.NoError(t, err)
	root := tr.Node(tr.Root)
	assert.Equal(t, "f1", root.Feature.Name())
	tb, fb := tr.Branches(tr.Root)
	assert.Equal(t, "f2", tb)
	assert.Equal(t, "False:is_en", fb)

	for _, c := range []struct {
		f1, f2 bool
		o      feature.Outcome
	}{
		{true, true, feature.Dutch},
		{true, false, feature.English},
		{false, true, feature.English},
		{false, false, feature.English},
	} {
		o, err := tr.Predict(sample(map[string]bool{"f1": c.f1, "f2": c.f2}))
		require.NoError(t, err)
		assert.Equal(t, c.o, o, "f1=%v f2=%v", c.f1, c.f2)
	}
}

func TestGrowDepthLimit(t *testing.T) {
	tr, err := Grow(context.Background(), conjunctionSet(t), Config{MaxDepth: 1})
	require.NoError(t, err)
	require.Len(t, tr.Nodes, 3)
	root := tr.Node(tr.Root)
	trueLeaf := tr.Node(root.True)
	require.True(t, trueLeaf.IsLeaf())
	assert.Equal(t, DepthLimit, trueLeaf.Reason)
	assert.Equal(t, feature.Dutch, trueLeaf.Outcome, "ties go to Dutch")
	falseLeaf := tr.Node(root.False)
	assert.Equal(t, Pure, falseLeaf.Reason)
	assert.Equal(t, feature.English, falseLeaf.Outcome)
}

func exhaustedSet(t *testing.T) *dataset.Set {
	return buildSet(t, []string{"f1", "f2"},
		[]bool{true, true, true},
		[]bool{true, true, false},
		[]bool{false, false, false},
		[]bool{false, true, false},
	)
}

func TestGrowLeavesUnresolvedBranches(t *testing.T) {
	tr, err := Grow(context.Background(), exhaustedSet(t), Config{})
	require.NoError(t, err)
	root := tr.Node(tr.Root)
	assert.Equal(t, "f1", root.Feature.Name())
	assert.Equal(t, NoNode, root.True)
	tb, fb := tr.Branches(tr.Root)
	assert.Equal(t, "", tb)
	assert.Equal(t, "False:is_en", fb)

	_, err = tr.Predict(sample(map[string]bool{"f1": true, "f2": true}))
	assert.Equal(t, ErrCannotPredictFromSample, err)
	o, err := tr.Predict(sample(map[string]bool{"f1": false, "f2": true}))
	require.NoError(t, err)
	assert.Equal(t, feature.English, o)
	assert.NoError(t, tr.Validate())
}

func TestGrowResolveExhausted(t *testing.T) {
	tr, err := Grow(context.Background(), exhaustedSet(t), Config{ResolveExhausted: true})
	require.NoError(t, err)
	root := tr.Node(tr.Root)
	leaf := tr.Node(root.True)
	require.NotNil(t, leaf)
	assert.Equal(t, Exhausted, leaf.Reason)
	assert.Equal(t, feature.Dutch, leaf.Outcome)
	assert.Equal(t, 2, leaf.Weight)
}

func singlePositiveSet(t *testing.T) *dataset.Set {
	return buildSet(t, []string{"f1"},
		[]bool{true, true},
		[]bool{false, true},
		[]bool{false, false},
		[]bool{false, false},
	)
}

func TestGrowSinglePositiveIsNotPure(t *testing.T) {
	tr, err := Grow(context.Background(), singlePositiveSet(t), Config{})
	require.NoError(t, err)
	root := tr.Node(tr.Root)
	require.NotNil(t, root)
	assert.Equal(t, "f1", root.Feature.Name())
	assert.Equal(t, NoNode, root.True)
	tb, fb := tr.Branches(tr.Root)
	assert.Equal(t, "", tb)
	assert.Equal(t, "False:is_en", fb)
	_, err = tr.Predict(sample(map[string]bool{"f1": true}))
	assert.Equal(t, ErrCannotPredictFromSample, err)

	tr, err = Grow(context.Background(), singlePositiveSet(t), Config{ResolveExhausted: true})
	require.NoError(t, err)
	leaf := tr.Node(tr.Node(tr.Root).True)
	require.NotNil(t, leaf)
	assert.Equal(t, Exhausted, leaf.Reason)
	assert.Equal(t, feature.Dutch, leaf.Outcome)
	assert.Equal(t, 1, leaf.Weight)
}

func TestPredictMissingFeature(t *testing.T) {
	tr, err := Grow(context.Background(), conjunctionSet(t), Config{})
	require.NoError(t, err)
	_, err = tr.Predict(sample(map[string]bool{"f1": true}))
	var mfe *feature.MissingFeatureError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "f2", mfe.Feature)
}

func TestGrowCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Grow(ctx, conjunctionSet(t), Config{})
	assert.Equal(t, context.Canceled, err)
}

// pseudoRandomSet builds a set with noisy labels from a fixed seed
func pseudoRandomSet(t *testing.T, samples int) *dataset.Set {
	names := []string{"a", "b", "c", "d", "e"}
	seed := uint32(7)
	next := func() bool {
		seed = seed*1664525 + 1013904223
		return seed>>31 == 1
	}
	rows := make([][]bool, samples)
	for i := range rows {
		r := make([]bool, len(names)+1)
		for j := range names {
			r[j] = next()
		}
		r[len(names)] = (r[0] && r[1]) || (r[2] && !r[3])
		if next() && next() && next() {
			r[len(names)] = !r[len(names)]
		}
		rows[i] = r
	}
	return buildSet(t, names, rows...)
}

func TestGrowLeavesArePureOrCapped(t *testing.T) {
	s := pseudoRandomSet(t, 120)
	for _, cfg := range []Config{{}, {MaxDepth: 2}, {ResolveExhausted: true}} {
		tr, err := Grow(context.Background(), s, cfg)
		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		err = tr.Traverse(context.Background(), false, func(_ context.Context, id NodeID, n *Node) error {
			if !n.IsLeaf() {
				return nil
			}
			switch n.Reason {
			case Pure:
				p := gain.Probability(n.Positives, n.Weight-n.Positives)
				assert.True(t, p == 0 || p == 1, "leaf %d", id)
				assert.Equal(t, feature.OutcomeFor(n.Positives > 0), n.Outcome)
			case DepthLimit:
				assert.True(t, cfg.MaxDepth > 0, "leaf %d", id)
			case Exhausted:
				assert.True(t, cfg.ResolveExhausted, "leaf %d", id)
			}
			return nil
		})
		require.NoError(t, err)
		assertFeaturesUsedOncePerPath(t, tr, tr.Root, map[string]bool{})
	}
}

func assertFeaturesUsedOncePerPath(t *testing.T, tr *Tree, id NodeID, used map[string]bool) {
	n := tr.Node(id)
	if n == nil || n.IsLeaf() {
		return
	}
	name := n.Feature.Name()
	assert.False(t, used[name], "feature %s split twice on a path", name)
	used[name] = true
	assertFeaturesUsedOncePerPath(t, tr, n.True, used)
	assertFeaturesUsedOncePerPath(t, tr, n.False, used)
	delete(used, name)
}

func TestGrowIsDeterministic(t *testing.T) {
	s := pseudoRandomSet(t, 80)
	t1, err := Grow(context.Background(), s, Config{})
	require.NoError(t, err)
	t2, err := Grow(context.Background(), s, Config{})
	require.NoError(t, err)
	assert.Equal(t, t1, t2)
}

func TestMapping(t *testing.T) {
	tr, err := Grow(context.Background(), conjunctionSet(t), Config{})
	require.NoError(t, err)
	m, err := tr.Mapping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{\n  null: f1\n  f1: {True: f2, False: False:is_en}\n  f2: {True: True:is_nl, False: False:is_en}\n}\n", m)

	tr, err = Grow(context.Background(), singlePositiveSet(t), Config{})
	require.NoError(t, err)
	m, err = tr.Mapping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{\n  null: f1\n  f1: {True: -, False: False:is_en}\n}\n", m)

	m, err = New(nil, NoNode).Mapping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", m)
}

func TestValidate(t *testing.T) {
	f := feature.NewBooleanFeature("f1")
	cases := map[string]*Tree{
		"missing child": New([]Node{{Feature: f, True: 1, False: 2}, {True: NoNode, False: NoNode, Outcome: feature.Dutch}}, 0),
		"cycle":         New([]Node{{Feature: f, True: 0, False: NoNode}}, 0),
		"bad outcome":   New([]Node{{True: NoNode, False: NoNode, Outcome: "is_de"}}, 0),
		"unreachable":   New([]Node{{True: NoNode, False: NoNode, Outcome: feature.Dutch}, {True: NoNode, False: NoNode, Outcome: feature.English}}, 0),
	}
	for name, tr := range cases {
		err := tr.Validate()
		assert.True(t, errors.Is(err, ErrInvalidTree), name)
	}
	_, err := cases["cycle"].Predict(sample(map[string]bool{"f1": true}))
	assert.True(t, errors.Is(err, ErrInvalidTree))
}
