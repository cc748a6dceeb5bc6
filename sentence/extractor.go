/*
Package sentence turns sentences into samples of boolean features telling
Dutch from English.
*/
package sentence

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/pkg/errors"
)

// ErrUnknownLanguage is returned for labelled lines with a language other than nl or en
var ErrUnknownLanguage = errors.New("unknown language")

/*
Definition names a feature and the predicate deciding its value
*/
type Definition struct {
	Name      string
	Predicate Predicate
}

/*
Extractor computes the values of an ordered list of features for sentences
*/
type Extractor struct {
	definitions []Definition
	features    []feature.Feature
}

/*
NewExtractor takes an ordered slice of definitions and returns an Extractor
for them, or an error if a definition lacks a predicate or the names are
not valid feature names.
*/
func NewExtractor(definitions []Definition) (*Extractor, error) {
	e := &Extractor{
		definitions: append([]Definition(nil), definitions...),
		features:    make([]feature.Feature, len(definitions)),
	}
	for i, d := range definitions {
		if d.Predicate == nil {
			return nil, fmt.Errorf("feature %s has no predicate", d.Name)
		}
		e.features[i] = feature.NewBooleanFeature(d.Name)
	}
	if err := feature.ValidateSchema(e.features); err != nil {
		return nil, err
	}
	return e, nil
}

// DefaultDefinitions returns the built-in feature definitions
func DefaultDefinitions() []Definition {
	return []Definition{
		{"nl_article", Words{"het", "de"}},
		{"nl_prepos", Words{"naar", "voor", "achter", "naast", "beneden", "boven", "onder", "op", "tussen", "het midden",
			"bij", "binnen", "buiten", "tegen", "rond", "sinds", "zonder", "na", "om"}},
		{"en_article", Words{"the", "a", "an"}},
		{"en_prepos", Words{"with", "from", "to", "in front of", "behind", "next to", "down", "downstairs",
			"above", "upstairs", "below", "on top", "between", "middle", "about", "over", "near",
			"inside", "outside", "against", "around", "since", "without", "before", "after"}},
		// acute accents and diaereses only, graves and circumflexes appear in loan words
		{"accent", Runes("ÁÄÉËÍÏÓÖÚÜÝáäéëíïóöúüýÿ")},
		{"als_present", Words{"als"}},
		{"as_present", Words{"as"}},
		{"dat_present", Words{"dat"}},
		{"that_present", Words{"that"}},
		{"also_present", Words{"also"}},
	}
}

// DefaultExtractor returns an Extractor for the built-in feature definitions
func DefaultExtractor() *Extractor {
	e, err := NewExtractor(DefaultDefinitions())
	if err != nil {
		panic(err)
	}
	return e
}

// Features returns the features computed by the extractor, in order
func (e *Extractor) Features() []feature.Feature {
	return append([]feature.Feature(nil), e.features...)
}

/*
Extract takes a sentence and returns an unlabelled sample with the value of
every feature for it.
*/
func (e *Extractor) Extract(line string) dataset.Sample {
	return dataset.NewSample(e.values(strings.ToLower(line)))
}

/*
ExtractLabelled takes a line with a two-letter language code, a separator
character and a sentence, as in "nl|Dit is een zin", and returns a sample
labelled true for Dutch and false for English.
*/
func (e *Extractor) ExtractLabelled(line string) (dataset.Sample, error) {
	line = strings.ToLower(line)
	lang, text, ok := splitLabel(line)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownLanguage, "line too short: %q", line)
	}
	var label bool
	switch lang {
	case "nl":
		label = true
	case "en":
	default:
		return nil, errors.Wrapf(ErrUnknownLanguage, "%q", lang)
	}
	values := e.values(text)
	values[feature.LabelName] = label
	return dataset.NewSample(values), nil
}

// splitLabel splits a line into its first two characters and whatever
// follows the single separator character after them.
func splitLabel(line string) (string, string, bool) {
	i := 0
	for n := 0; n < 3; n++ {
		_, size := utf8.DecodeRuneInString(line[i:])
		if size == 0 {
			return "", "", false
		}
		if n == 2 {
			return line[:i], line[i+size:], true
		}
		i += size
	}
	return "", "", false
}

func (e *Extractor) values(line string) map[string]bool {
	values := make(map[string]bool, len(e.definitions)+1)
	for _, d := range e.definitions {
		values[d.Name] = d.Predicate.Holds(line)
	}
	return values
}
