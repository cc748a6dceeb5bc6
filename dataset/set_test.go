package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	f1 = feature.NewBooleanFeature("f1")
	f2 = feature.NewBooleanFeature("f2")
)

func testSet(t *testing.T) *Set {
	s, err := New([]feature.Feature{f1, f2}, []Sample{
		NewSample(map[string]bool{"f1": true, "f2": false, "res": true}),
		NewSample(map[string]bool{"f1": false, "f2": false, "res": false}),
		NewSample(map[string]bool{"f1": true, "f2": true, "res": true}),
		NewSample(map[string]bool{"f1": false, "f2": true, "res": false}),
		NewSample(map[string]bool{"f1": true, "f2": true, "res": false}),
	})
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := testSet(t)
	assert.Equal(t, 5, s.Count())
	assert.Equal(t, 2, s.Width())
	col, ok := s.Column("f2")
	assert.True(t, ok)
	assert.Equal(t, 1, col)
	_, ok = s.Column("res")
	assert.False(t, ok)
	assert.True(t, s.Value(2, col))
	assert.False(t, s.Label(4))

	v, err := s.Sample(0).ValueFor(feature.Label)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestNewReportsMissingFeature(t *testing.T) {
	_, err := New([]feature.Feature{f1, f2}, []Sample{
		NewSample(map[string]bool{"f1": true, "f2": false, "res": true}),
		NewSample(map[string]bool{"f1": false, "res": false}),
	})
	require.Error(t, err)
	var mfe *feature.MissingFeatureError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "f2", mfe.Feature)
	assert.Contains(t, err.Error(), "sample #1")
}

func TestNewReportsMissingLabel(t *testing.T) {
	_, err := New([]feature.Feature{f1}, []Sample{NewSample(map[string]bool{"f1": true})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label")
}

func TestNewRejectsReservedNames(t *testing.T) {
	_, err := New([]feature.Feature{f1, feature.NewBooleanFeature("weight")}, nil)
	assert.Error(t, err)
}

func TestSplitKeepsOrder(t *testing.T) {
	s := testSet(t)
	pos, neg := s.All().Split(0)
	assert.Equal(t, []int{0, 2, 4}, pos.Rows())
	assert.Equal(t, []int{1, 3}, neg.Rows())
	assert.Equal(t, 2, pos.Positives())
	assert.Equal(t, 0, neg.Positives())

	tt, tf := pos.Split(1)
	assert.Equal(t, []int{2, 4}, tt.Rows())
	assert.Equal(t, []int{0}, tf.Rows())
}

type sliceReader []Sample

func (sr sliceReader) Read(ctx context.Context) (<-chan Sample, <-chan error) {
	samples := make(chan Sample)
	errs := make(chan error, 1)
	go func() {
		for _, s := range sr {
			samples <- s
		}
		close(samples)
		close(errs)
	}()
	return samples, errs
}

type sliceWriter struct {
	samples []Sample
}

func (sw *sliceWriter) Write(ctx context.Context, samples []Sample) (int, error) {
	sw.samples = append(sw.samples, samples...)
	return len(samples), nil
}

func TestCollectAndDump(t *testing.T) {
	s := testSet(t)
	w := &sliceWriter{}
	n, err := Dump(context.Background(), s, w)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	c, err := Collect(context.Background(), s.Features(), sliceReader(w.samples))
	require.NoError(t, err)
	assert.Equal(t, s.Count(), c.Count())
	for i := 0; i < s.Count(); i++ {
		assert.Equal(t, s.Label(i), c.Label(i))
		for col := 0; col < s.Width(); col++ {
			assert.Equal(t, s.Value(i, col), c.Value(i, col))
		}
	}
}
