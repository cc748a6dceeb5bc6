package feature

import (
	"fmt"

	"golang.org/x/exp/slices"
)

/*
Feature represents a boolean property that can be observed on a sentence
*/
type Feature interface {
	Name() string
}

/*
BooleanFeature represents a property that a sample either has or has not.
*/
type BooleanFeature struct {
	name string
}

/*
Outcome is the language decided for a sample: either Dutch or English
*/
type Outcome string

const (
	// Dutch is the outcome for samples labelled as Dutch sentences
	Dutch = Outcome("is_nl")
	// English is the outcome for samples labelled as English sentences
	English = Outcome("is_en")
)

// LabelName is the name of the feature holding the label of a sample
const LabelName = "res"

/*
Label is the feature holding whether a sample is a Dutch sentence (true)
or an English one (false).
*/
var Label = NewBooleanFeature(LabelName)

var reservedNames = []string{LabelName, "sent", "weight", "incorrect"}

/*
NewBooleanFeature takes a name string and returns a boolean feature with
the given name.
*/
func NewBooleanFeature(name string) *BooleanFeature {
	return &BooleanFeature{name}
}

/*
Name returns a string with the name of the feature
*/
func (bf *BooleanFeature) Name() string {
	return bf.name
}

func (bf *BooleanFeature) String() string {
	return bf.name
}

/*
Reserved returns whether the given name is reserved for bookkeeping
and cannot be used to name a feature.
*/
func Reserved(name string) bool {
	return slices.Contains(reservedNames, name)
}

/*
ValidateSchema takes an ordered slice of features and returns an error
if any of them has an empty or reserved name or if a name is repeated.
*/
func ValidateSchema(features []Feature) error {
	seen := make(map[string]bool, len(features))
	for i, f := range features {
		name := f.Name()
		if name == "" {
			return fmt.Errorf("feature #%d has an empty name", i)
		}
		if Reserved(name) {
			return fmt.Errorf("'%s' is reserved and cannot be used as feature name", name)
		}
		if seen[name] {
			return fmt.Errorf("feature '%s' is defined more than once", name)
		}
		seen[name] = true
	}
	return nil
}

/*
OutcomeFor returns the outcome corresponding to a label value
*/
func OutcomeFor(label bool) Outcome {
	if label {
		return Dutch
	}
	return English
}

/*
Label returns the label value corresponding to the outcome
*/
func (o Outcome) Label() bool {
	return o == Dutch
}

/*
Valid returns whether the outcome is one of Dutch or English
*/
func (o Outcome) Valid() bool {
	return o == Dutch || o == English
}

func (o Outcome) String() string {
	return string(o)
}
