package boost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
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

func noisySet(t *testing.T, width, samples int) *dataset.Set {
	names := make([]string, width)
	for i := range names {
		names[i] = fmt.Sprintf("f%d", i)
	}
	seed := uint32(11)
	next := func() bool {
		seed = seed*1664525 + 1013904223
		return seed>>31 == 1
	}
	rows := make([][]bool, samples)
	for i := range rows {
		r := make([]bool, width+1)
		for j := 0; j < width; j++ {
			r[j] = next()
		}
		r[width] = r[0] != (r[1] && r[2])
		rows[i] = r
	}
	return buildSet(t, names, rows...)
}

func TestTrainSeparableFeatures(t *testing.T) {
	s := buildSet(t, []string{"f1", "f2"},
		[]bool{true, true, true},
		[]bool{false, false, false},
		[]bool{true, true, true},
		[]bool{false, false, false},
	)
	e, err := Train(context.Background(), s, Config{})
	require.NoError(t, err)
	require.Len(t, e.Stumps, 2)
	assert.Equal(t, "f1", e.Stumps[0].Feature.Name())
	assert.Equal(t, "f2", e.Stumps[1].Feature.Name())
	for _, st := range e.Stumps {
		assert.Equal(t, feature.Dutch, st.True)
		assert.Equal(t, feature.English, st.False)
		assert.False(t, math.IsInf(st.AmountOfSay, 0))
		assert.False(t, math.IsNaN(st.AmountOfSay))
	}
	for i, smp := range s.Samples() {
		o, err := e.Predict(smp)
		require.NoError(t, err)
		assert.Equal(t, feature.OutcomeFor(s.Label(i)), o, "sample %d", i)
	}
}

func TestTrainKeepsWeightsNormalized(t *testing.T) {
	s := noisySet(t, 6, 50)
	var rounds []Round
	e, err := Train(context.Background(), s, Config{OnRound: func(r Round) {
		rounds = append(rounds, r)
	}})
	require.NoError(t, err)
	require.Len(t, rounds, len(e.Stumps))
	for i, r := range rounds {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, e.Stumps[i].Feature, r.Feature)
		require.Len(t, r.Weights, s.Count())
		var total float64
		for _, w := range r.Weights {
			assert.True(t, w > 0)
			total += w
		}
		assert.InDelta(t, 1.0, total, 1e-9, "round %d", i)
		assert.InDelta(t, AmountOfSay(r.Error), r.AmountOfSay, 0)
	}
}

func TestTrainReweightsMisclassifiedSamples(t *testing.T) {
	s := buildSet(t, []string{"f1"},
		[]bool{true, true},
		[]bool{true, true},
		[]bool{true, false},
		[]bool{false, false},
	)
	var round Round
	_, err := Train(context.Background(), s, Config{OnRound: func(r Round) { round = r }})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, round.Error, 1e-12)
	assert.InDelta(t, 0.5*math.Log(3), round.AmountOfSay, 1e-12)
	assert.InDelta(t, 0.5, round.Weights[2], 1e-12)
	for _, i := range []int{0, 1, 3} {
		assert.InDelta(t, 1.0/6, round.Weights[i], 1e-12)
	}
}

func TestTrainStumpCap(t *testing.T) {
	s := noisySet(t, 12, 40)
	e, err := Train(context.Background(), s, Config{})
	require.NoError(t, err)
	assert.Len(t, e.Stumps, DefaultStumpCap-1)

	e, err = Train(context.Background(), s, Config{StumpCap: 3})
	require.NoError(t, err)
	assert.Len(t, e.Stumps, 2)

	ranking := Rank(s)
	require.Len(t, ranking, 12)
	for i, st := range e.Stumps {
		assert.Equal(t, s.Feature(ranking[i]), st.Feature)
	}
}

func TestRank(t *testing.T) {
	s := buildSet(t, []string{"noise", "weak", "strong", "weak2"},
		[]bool{true, true, true, true, true},
		[]bool{false, true, true, true, true},
		[]bool{true, false, false, false, false},
		[]bool{false, false, false, false, false},
		[]bool{false, true, false, true, false},
		[]bool{false, false, true, false, true},
	)
	ranking := Rank(s)
	require.Len(t, ranking, 4)
	assert.Equal(t, 2, ranking[0])
	assert.Equal(t, []int{1, 3}, ranking[1:3], "ties keep schema order")
	assert.Equal(t, 0, ranking[3])

	empty := buildSet(t, []string{"f1"})
	assert.Empty(t, Rank(empty))
}

func TestTrainEmptySet(t *testing.T) {
	e, err := Train(context.Background(), buildSet(t, []string{"f1"}), Config{})
	require.NoError(t, err)
	assert.Empty(t, e.Stumps)
	o, err := e.Predict(dataset.NewSample(map[string]bool{"f1": true}))
	require.NoError(t, err)
	assert.Equal(t, feature.English, o)
}

func TestTrainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Train(ctx, noisySet(t, 3, 10), Config{})
	assert.Equal(t, context.Canceled, err)
}

func TestAmountOfSayIsFinite(t *testing.T) {
	assert.InDelta(t, 0.5*math.Log(1/0x1p-52), AmountOfSay(0), 1e-9)
	assert.InDelta(t, 0, AmountOfSay(0.5), 1e-12)
	for _, e := range []float64{1, 1 + 1e-12} {
		say := AmountOfSay(e)
		assert.False(t, math.IsInf(say, 0) || math.IsNaN(say), "error %v", e)
		assert.True(t, say < 0)
	}
}

func TestPredictTieGoesToEnglish(t *testing.T) {
	f1, f2 := feature.NewBooleanFeature("f1"), feature.NewBooleanFeature("f2")
	e := &Ensemble{Stumps: []Stump{
		{Feature: f1, AmountOfSay: 0.7, True: feature.Dutch, False: feature.English},
		{Feature: f2, AmountOfSay: 0.7, True: feature.English, False: feature.Dutch},
	}}
	o, err := e.Predict(dataset.NewSample(map[string]bool{"f1": true, "f2": true}))
	require.NoError(t, err)
	assert.Equal(t, feature.English, o)
	o, err = e.Predict(dataset.NewSample(map[string]bool{"f1": true, "f2": false}))
	require.NoError(t, err)
	assert.Equal(t, feature.Dutch, o)

	_, err = e.Predict(dataset.NewSample(map[string]bool{"f1": true}))
	var mfe *feature.MissingFeatureError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "f2", mfe.Feature)
}

func TestEnsembleJSON(t *testing.T) {
	e, err := Train(context.Background(), noisySet(t, 5, 30), Config{})
	require.NoError(t, err)
	data, err := json.Marshal(e)
	require.NoError(t, err)
	var decoded Ensemble
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, e, &decoded)

	data, err = json.Marshal(&Ensemble{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	err = json.Unmarshal([]byte(`[{"feature":"f1","amount_of_say":1,"True":"is_de","False":"is_en"}]`), &decoded)
	assert.Error(t, err)
}
