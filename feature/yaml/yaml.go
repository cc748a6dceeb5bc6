/*
Package yaml provides methods to parse sentence feature definitions
from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/sentence"
	yaml "gopkg.in/yaml.v2"
)

type definition struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
	Runes string   `yaml:"runes"`
}

/*
ReadDefinitions takes a slice of bytes with feature definitions in YML and
returns a slice of definitions parsed from it, in document order, or an error.
The YML is expected to be an object containing a features property. The value
for this should be a list of objects, each with the name of the feature and
either a list of words (a sentence has the feature if it contains any
of them as a whole term) or a string of runes (a sentence has the feature
if it contains any of them).
*/
func ReadDefinitions(md []byte) ([]sentence.Definition, error) {
	metadata := struct {
		Features []definition `yaml:"features"`
	}{}
	err := yaml.UnmarshalStrict(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if len(metadata.Features) == 0 {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	definitions := make([]sentence.Definition, 0, len(metadata.Features))
	for i, d := range metadata.Features {
		if d.Name == "" {
			return nil, fmt.Errorf("feature #%d has no name", i)
		}
		switch {
		case len(d.Words) > 0 && d.Runes != "":
			return nil, fmt.Errorf("feature %s defines both words and runes", d.Name)
		case len(d.Words) > 0:
			definitions = append(definitions, sentence.Definition{Name: d.Name, Predicate: sentence.Words(d.Words)})
		case d.Runes != "":
			definitions = append(definitions, sentence.Definition{Name: d.Name, Predicate: sentence.Runes(d.Runes)})
		default:
			return nil, fmt.Errorf("feature %s defines neither words nor runes", d.Name)
		}
	}
	return definitions, nil
}

/*
ReadDefinitionsFromFile takes a filepath string, reads its contents and uses
ReadDefinitions to parse it and return a slice of parsed definitions or an
error. If the file indicated by the filepath cannot be opened for reading an
error will be returned.
*/
func ReadDefinitionsFromFile(filepath string) ([]sentence.Definition, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features from %s: %v", filepath, err)
	}
	return ReadDefinitions(md)
}

/*
ReadExtractorFromFile takes a filepath string and returns a sentence.Extractor
for the feature definitions in the YML file it points to.
*/
func ReadExtractorFromFile(filepath string) (*sentence.Extractor, error) {
	definitions, err := ReadDefinitionsFromFile(filepath)
	if err != nil {
		return nil, err
	}
	return sentence.NewExtractor(definitions)
}
