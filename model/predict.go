package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Predictor is anything that predicts outcomes for samples
type Predictor interface {
	Predict(feature.Sample) (feature.Outcome, error)
}

// Result holds the outcome predicted for a sample or the error preventing it
type Result struct {
	Outcome feature.Outcome
	Err     error
}

/*
PredictAll takes a context, a Predictor and a slice of samples and returns
one Result per sample, in order. Failing samples do not stop the batch.
An error is returned only if the context is done before all samples
have been processed.
*/
func PredictAll(ctx context.Context, p Predictor, samples []dataset.Sample) ([]Result, error) {
	results := make([]Result, len(samples))
	for i, s := range samples {
		if err := ctx.Err(); err != nil {
			return results[:i], err
		}
		o, err := p.Predict(s)
		results[i] = Result{o, err}
	}
	return results, nil
}

// Failures combines the errors of the failed results, naming their positions
func Failures(results []Result) error {
	var err error
	for i, r := range results {
		if r.Err != nil {
			err = multierr.Append(err, errors.Wrapf(r.Err, "sample #%d", i))
		}
	}
	return err
}

/*
Report summarizes the predictions made for a set of labelled samples.
Confusion counts samples by actual and predicted outcome.
*/
type Report struct {
	Total     int
	Correct   int
	Failed    int
	Confusion map[feature.Outcome]map[feature.Outcome]int
	Err       error
}

// Accuracy returns the ratio of correctly predicted samples over all samples
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Count returns the number of samples of the actual outcome predicted as predicted
func (r *Report) Count(actual, predicted feature.Outcome) int {
	return r.Confusion[actual][predicted]
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d correct (%.2f%%), %d failed\n", r.Correct, r.Total, 100*r.Accuracy(), r.Failed)
	for _, actual := range []feature.Outcome{feature.Dutch, feature.English} {
		for _, predicted := range []feature.Outcome{feature.Dutch, feature.English} {
			fmt.Fprintf(&b, "%s as %s: %d\n", actual, predicted, r.Count(actual, predicted))
		}
	}
	return b.String()
}

/*
Evaluate takes a context, a Predictor and a set of labelled samples and
returns a Report on the predictions made for them. Samples for which no
prediction can be made count as failed, and their errors are combined
in the report's Err.
*/
func Evaluate(ctx context.Context, p Predictor, s *dataset.Set) (*Report, error) {
	results, err := PredictAll(ctx, p, s.Samples())
	if err != nil {
		return nil, err
	}
	r := &Report{
		Total: len(results),
		Confusion: map[feature.Outcome]map[feature.Outcome]int{
			feature.Dutch:   {},
			feature.English: {},
		},
		Err: Failures(results),
	}
	for i, res := range results {
		if res.Err != nil {
			r.Failed++
			continue
		}
		actual := feature.OutcomeFor(s.Label(i))
		r.Confusion[actual][res.Outcome]++
		if actual == res.Outcome {
			r.Correct++
		}
	}
	return r, nil
}
