package dataset

import (
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
)

/*
Sample represents a sentence from which to learn or for which to predict
a language, reduced to the boolean values of its features.

Its ValueFor method returns the value of the sample corresponding to the feature
passed as parameter, or a *feature.MissingFeatureError if the sample
does not define it.
*/
type Sample interface {
	ValueFor(feature.Feature) (bool, error)
}

type sample struct {
	featureValues map[string]bool
}

/*
NewSample takes a map of feature string names to values and returns a sample.
The label, when known, is expected under feature.LabelName.
*/
func NewSample(featureValues map[string]bool) Sample {
	return &sample{featureValues}
}

func (s *sample) ValueFor(f feature.Feature) (bool, error) {
	v, ok := s.featureValues[f.Name()]
	if !ok {
		return false, &feature.MissingFeatureError{Feature: f.Name()}
	}
	return v, nil
}

func (s *sample) String() string {
	return fmt.Sprintf("[%v]", s.featureValues)
}

type row struct {
	set   *Set
	index int
}

func (r row) ValueFor(f feature.Feature) (bool, error) {
	if f.Name() == feature.LabelName {
		return r.set.labels[r.index], nil
	}
	col, ok := r.set.columns[f.Name()]
	if !ok {
		return false, &feature.MissingFeatureError{Feature: f.Name(), Sample: r.index}
	}
	return r.set.values[r.index][col], nil
}

func (r row) String() string {
	return fmt.Sprintf("#%d", r.index)
}
