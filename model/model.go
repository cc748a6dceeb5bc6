/*
Package model wraps the learners in a single model type that can be
trained, applied, serialized and stored regardless of its kind.
*/
package model

import (
	"context"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/boost"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/tree"
	"github.com/pkg/errors"
)

// Kind identifies the learner behind a model
type Kind string

const (
	// DecisionTree models are grown by tree.Grow
	DecisionTree Kind = "dt"
	// AdaBoost models are trained by boost.Train
	AdaBoost Kind = "ada"
)

var (
	// ErrUnknownKind is returned for kinds other than dt and ada
	ErrUnknownKind = errors.New("unknown model kind")
	// ErrModelNotFound is returned by stores that have no model under a name
	ErrModelNotFound = errors.New("model not found")
)

// ParseKind returns the Kind named by s
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case DecisionTree, AdaBoost:
		return k, nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

/*
Config holds the configuration for both learners. Only the one matching
the trained kind is used.
*/
type Config struct {
	Tree  tree.Config
	Boost boost.Config
}

/*
Model is a trained classifier: a decision tree for the dt kind
or an ensemble of stumps for the ada kind.
*/
type Model struct {
	Kind     Kind
	Tree     *tree.Tree
	Ensemble *boost.Ensemble
}

/*
Train takes a context, a kind, a set of labelled samples and a Config and
returns a model of the given kind trained on the set.
*/
func Train(ctx context.Context, kind Kind, s *dataset.Set, cfg Config) (*Model, error) {
	switch kind {
	case DecisionTree:
		t, err := tree.Grow(ctx, s, cfg.Tree)
		if err != nil {
			return nil, errors.Wrap(err, "growing tree")
		}
		return &Model{Kind: kind, Tree: t}, nil
	case AdaBoost:
		e, err := boost.Train(ctx, s, cfg.Boost)
		if err != nil {
			return nil, errors.Wrap(err, "training ensemble")
		}
		return &Model{Kind: kind, Ensemble: e}, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

/*
Predict takes a sample and returns the outcome predicted for it by the
model, or an error if the model cannot make a prediction for it.
*/
func (m *Model) Predict(s feature.Sample) (feature.Outcome, error) {
	switch m.Kind {
	case DecisionTree:
		if m.Tree == nil {
			return "", tree.ErrEmptyTree
		}
		return m.Tree.Predict(s)
	case AdaBoost:
		if m.Ensemble == nil {
			return feature.English, nil
		}
		return m.Ensemble.Predict(s)
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", m.Kind)
}

func (m *Model) String() string {
	switch m.Kind {
	case DecisionTree:
		if m.Tree != nil {
			return m.Tree.String()
		}
	case AdaBoost:
		if m.Ensemble != nil {
			return m.Ensemble.String()
		}
	}
	return ""
}
