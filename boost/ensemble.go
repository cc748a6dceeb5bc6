package boost

import (
	"encoding/json"
	"strings"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
)

/*
Ensemble is an ordered list of stumps voting on the outcome of samples
*/
type Ensemble struct {
	Stumps []Stump
}

/*
Predict takes a sample and returns the outcome with the greatest total amount
of say among the stumps. Ties go to English. An error is returned if the
sample lacks a feature any stump depends on.
*/
func (e *Ensemble) Predict(s feature.Sample) (feature.Outcome, error) {
	var nl, en float64
	for i := range e.Stumps {
		st := &e.Stumps[i]
		v, err := s.ValueFor(st.Feature)
		if err != nil {
			return "", err
		}
		if st.Decide(v) == feature.Dutch {
			nl += st.AmountOfSay
		} else {
			en += st.AmountOfSay
		}
	}
	if nl > en {
		return feature.Dutch, nil
	}
	return feature.English, nil
}

func (e *Ensemble) String() string {
	var sb strings.Builder
	for i := range e.Stumps {
		sb.WriteString(e.Stumps[i].String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// MarshalJSON serializes the ensemble as the array of its stumps, in order
func (e Ensemble) MarshalJSON() ([]byte, error) {
	stumps := e.Stumps
	if stumps == nil {
		stumps = []Stump{}
	}
	return json.Marshal(stumps)
}

// UnmarshalJSON parses an ensemble serialized with MarshalJSON
func (e *Ensemble) UnmarshalJSON(data []byte) error {
	var stumps []Stump
	if err := json.Unmarshal(data, &stumps); err != nil {
		return err
	}
	if len(stumps) == 0 {
		stumps = nil
	}
	e.Stumps = stumps
	return nil
}
