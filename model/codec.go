package model

import (
	"encoding/json"
	"io"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/boost"
	treejson "github.com/anuragkanade/LanguageDetectionEnglishDutch/tree/json"
	"github.com/pkg/errors"
)

type envelope struct {
	Kind     Kind            `json:"kind"`
	Tree     json.RawMessage `json:"tree,omitempty"`
	Ensemble *boost.Ensemble `json:"ensemble,omitempty"`
}

// Marshal returns the JSON serialization of a model
func Marshal(m *Model) ([]byte, error) {
	env := envelope{Kind: m.Kind}
	switch m.Kind {
	case DecisionTree:
		data, err := treejson.Marshal(m.Tree)
		if err != nil {
			return nil, errors.Wrap(err, "encoding tree")
		}
		env.Tree = data
	case AdaBoost:
		env.Ensemble = m.Ensemble
		if env.Ensemble == nil {
			env.Ensemble = &boost.Ensemble{}
		}
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", m.Kind)
	}
	return json.Marshal(env)
}

/*
Unmarshal takes the JSON serialization of a model and returns the model,
or an error if it cannot be parsed, its kind is unknown or it lacks the
part its kind requires.
*/
func Unmarshal(data []byte) (*Model, error) {
	env := envelope{}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "decoding model")
	}
	m := &Model{Kind: env.Kind}
	switch env.Kind {
	case DecisionTree:
		if len(env.Tree) == 0 {
			return nil, errors.New("decoding model: dt model without tree")
		}
		t, err := treejson.Unmarshal(env.Tree)
		if err != nil {
			return nil, errors.Wrap(err, "decoding tree")
		}
		m.Tree = t
	case AdaBoost:
		if env.Ensemble == nil {
			return nil, errors.New("decoding model: ada model without ensemble")
		}
		m.Ensemble = env.Ensemble
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "decoding model: %q", env.Kind)
	}
	return m, nil
}

// Encode writes the JSON serialization of a model onto w
func Encode(w io.Writer, m *Model) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads the JSON serialization of a model from r and returns the model
func Decode(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading model")
	}
	return Unmarshal(data)
}
