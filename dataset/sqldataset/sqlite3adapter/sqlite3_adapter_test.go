package sqlite3adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset/sqldataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "samples.db"), 1)
	require.NoError(t, err)
	defer a.Close()

	features := []feature.Feature{feature.NewBooleanFeature("dat_present")}
	s, err := sqldataset.Create(ctx, a, features)
	require.NoError(t, err)

	var samples []dataset.Sample
	for i := 0; i < 25; i++ {
		samples = append(samples, dataset.NewSample(map[string]bool{"dat_present": i%3 == 0, "res": i%2 == 0}))
	}
	n, err := s.Write(ctx, samples)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 25, loaded.Count())
	for i := 0; i < 25; i++ {
		assert.Equal(t, i%3 == 0, loaded.Value(i, 0))
		assert.Equal(t, i%2 == 0, loaded.Label(i))
	}
	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, count)
}
