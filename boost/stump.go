package boost

import (
	"encoding/json"
	"fmt"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/pkg/errors"
)

/*
Stump is a one-level decision tree: it decides an outcome for samples
having the feature and another for samples not having it, and has a say in
the ensemble vote proportional to how well it did on the training samples.
*/
type Stump struct {
	Feature     feature.Feature
	AmountOfSay float64
	True, False feature.Outcome
}

type jsonStump struct {
	Feature     string          `json:"feature"`
	AmountOfSay float64         `json:"amount_of_say"`
	True        feature.Outcome `json:"True"`
	False       feature.Outcome `json:"False"`
}

// Decide returns the outcome of the stump for the given feature value
func (s *Stump) Decide(value bool) feature.Outcome {
	if value {
		return s.True
	}
	return s.False
}

func (s *Stump) String() string {
	return fmt.Sprintf("%s: True:%s False:%s (%g)", s.Feature.Name(), s.True, s.False, s.AmountOfSay)
}

// MarshalJSON serializes the stump with the name of its feature
func (s Stump) MarshalJSON() ([]byte, error) {
	if s.Feature == nil {
		return nil, errors.New("stump without feature")
	}
	return json.Marshal(jsonStump{s.Feature.Name(), s.AmountOfSay, s.True, s.False})
}

// UnmarshalJSON parses a stump serialized with MarshalJSON
func (s *Stump) UnmarshalJSON(data []byte) error {
	var js jsonStump
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	if js.Feature == "" {
		return errors.New("stump without feature")
	}
	if !js.True.Valid() || !js.False.Valid() {
		return errors.Errorf("stump on %s has unknown outcomes %q/%q", js.Feature, js.True, js.False)
	}
	*s = Stump{feature.NewBooleanFeature(js.Feature), js.AmountOfSay, js.True, js.False}
	return nil
}
