package dataset

import (
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/pkg/errors"
)

/*
Set is an ordered, immutable collection of labelled samples sharing the
same feature schema. Samples are kept in the order they were given and
are addressed by their position (row). Feature values are addressed by
the position of the feature in the schema (column).
*/
type Set struct {
	features []feature.Feature
	columns  map[string]int
	values   [][]bool
	labels   []bool
}

/*
New takes an ordered slice of features and a slice of samples and returns
a Set with the value of every feature and the label of every sample.

An error is returned if the schema is not valid or if any sample does not
define a value for a feature in the schema or for the label. The error
names the offending sample position and feature.
*/
func New(features []feature.Feature, samples []Sample) (*Set, error) {
	if err := feature.ValidateSchema(features); err != nil {
		return nil, errors.Wrap(err, "building set")
	}
	s := &Set{
		features: append([]feature.Feature(nil), features...),
		columns:  make(map[string]int, len(features)),
		values:   make([][]bool, len(samples)),
		labels:   make([]bool, len(samples)),
	}
	for i, f := range s.features {
		s.columns[f.Name()] = i
	}
	for i, sample := range samples {
		values := make([]bool, len(s.features))
		for j, f := range s.features {
			v, err := sample.ValueFor(f)
			if err != nil {
				return nil, errors.Wrapf(err, "building set: sample #%d: feature %s", i, f.Name())
			}
			values[j] = v
		}
		label, err := sample.ValueFor(feature.Label)
		if err != nil {
			return nil, errors.Wrapf(err, "building set: sample #%d: label", i)
		}
		s.values[i] = values
		s.labels[i] = label
	}
	return s, nil
}

// Features returns the schema of the set
func (s *Set) Features() []feature.Feature {
	return append([]feature.Feature(nil), s.features...)
}

// Feature returns the feature at the given column
func (s *Set) Feature(col int) feature.Feature {
	return s.features[col]
}

// Column returns the position of the feature with the given name in the schema
func (s *Set) Column(name string) (int, bool) {
	col, ok := s.columns[name]
	return col, ok
}

// Width returns the number of features in the schema
func (s *Set) Width() int {
	return len(s.features)
}

// Count returns the number of samples in the set
func (s *Set) Count() int {
	return len(s.labels)
}

// Value returns the value of the feature at column col for the sample at position i
func (s *Set) Value(i, col int) bool {
	return s.values[i][col]
}

// Label returns the label of the sample at position i
func (s *Set) Label(i int) bool {
	return s.labels[i]
}

// Sample returns a view on the sample at position i
func (s *Set) Sample(i int) Sample {
	return row{s, i}
}

// Samples returns views on every sample in the set, in order
func (s *Set) Samples() []Sample {
	result := make([]Sample, len(s.labels))
	for i := range result {
		result[i] = row{s, i}
	}
	return result
}

/*
All returns a Subset with all the samples in the set
*/
func (s *Set) All() Subset {
	rows := make([]int, len(s.labels))
	for i := range rows {
		rows[i] = i
	}
	return Subset{s, rows}
}
