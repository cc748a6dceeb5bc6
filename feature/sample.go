package feature

import (
	"fmt"
)

/*
Sample is an interface for something holding a value for features.

Its ValueFor method returns the value corresponding to the feature
passed as parameter, or a *MissingFeatureError if the sample does not
define it.
*/
type Sample interface {
	ValueFor(Feature) (bool, error)
}

/*
MissingFeatureError is returned when a sample is asked for the value of a
feature it does not define.
*/
type MissingFeatureError struct {
	Feature string
	Sample  interface{}
}

func (mfe *MissingFeatureError) Error() string {
	if mfe.Sample == nil {
		return fmt.Sprintf("sample does not define feature %s", mfe.Feature)
	}
	return fmt.Sprintf("sample %v does not define feature %s", mfe.Sample, mfe.Feature)
}
