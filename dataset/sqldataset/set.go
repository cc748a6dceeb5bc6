package sqldataset

import (
	"context"
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
)

/*
Set is a dataset.Reader and dataset.Writer over
the samples table of a database
*/
type Set struct {
	adapter  Adapter
	features []feature.Feature
	columns  []string
}

/*
Open takes a context, an Adapter and the features of the samples
and returns a Set on the adapter's database, or an error if the feature
names cannot be used as columns.
*/
func Open(ctx context.Context, adapter Adapter, features []feature.Feature) (*Set, error) {
	if err := feature.ValidateSchema(features); err != nil {
		return nil, err
	}
	columns := make([]string, 0, len(features)+1)
	for _, f := range append(append([]feature.Feature(nil), features...), feature.Label) {
		c, err := adapter.ColumnName(f.Name())
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return &Set{adapter, append([]feature.Feature(nil), features...), columns}, nil
}

/*
Create works as Open but also ensures the samples
table exists on the database.
*/
func Create(ctx context.Context, adapter Adapter, features []feature.Feature) (*Set, error) {
	s, err := Open(ctx, adapter, features)
	if err != nil {
		return nil, err
	}
	err = adapter.CreateSampleTable(ctx, s.columns)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Features returns the features of the samples in the set
func (s *Set) Features() []feature.Feature {
	return s.features
}

// Count returns the number of samples in the set
func (s *Set) Count(ctx context.Context) (int, error) {
	return s.adapter.CountSamples(ctx)
}

/*
Write stores the given samples, labels included, and returns the number of
samples stored and an error if not all of them could be.
*/
func (s *Set) Write(ctx context.Context, samples []dataset.Sample) (int, error) {
	rows := make([][]bool, 0, len(samples))
	for i, sample := range samples {
		row := make([]bool, 0, len(s.columns))
		for _, f := range append(append([]feature.Feature(nil), s.features...), feature.Label) {
			v, err := sample.ValueFor(f)
			if err != nil {
				return 0, fmt.Errorf("sample #%d: %v", i, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return s.adapter.AddSamples(ctx, rows, s.columns)
}

/*
Read sends every stored sample, in the order they were written, on the
returned sample channel.
*/
func (s *Set) Read(ctx context.Context) (<-chan dataset.Sample, <-chan error) {
	samples := make(chan dataset.Sample)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(samples)
		err := s.adapter.IterateOnSamples(ctx, s.columns, func(_ int, row []bool) (bool, error) {
			values := make(map[string]bool, len(row))
			for i, f := range s.features {
				values[f.Name()] = row[i]
			}
			values[feature.LabelName] = row[len(row)-1]
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case samples <- dataset.NewSample(values):
			}
			return true, nil
		})
		if err != nil {
			errs <- err
		}
	}()
	return samples, errs
}

// Load reads every stored sample into a dataset.Set
func (s *Set) Load(ctx context.Context) (*dataset.Set, error) {
	return dataset.Collect(ctx, s.features, s)
}
