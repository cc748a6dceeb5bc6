package tree

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by the Predict method of a tree
when the prediction cannot be made because the tree itself cannot make
a prediction for that kind of sample, as opposed to cases where values
for a feature cannot be obtained for example.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

/*
ErrEmptyTree is the error returned when trying to make a prediction with
a tree that has no root, which is what growing a tree from samples that
no feature can split yields.
*/
const ErrEmptyTree = PredictionError("cannot make prediction with an empty tree")

/*
ErrInvalidTree is the error returned when a tree refers to nodes it does not
have or contains cycles.
*/
const ErrInvalidTree = PredictionError("invalid tree")

func (pe PredictionError) Error() string {
	return string(pe)
}
