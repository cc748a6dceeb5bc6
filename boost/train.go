/*
Package boost trains and applies AdaBoost ensembles of decision stumps.
*/
package boost

import (
	"context"
	"math"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/feature"
	"github.com/anuragkanade/LanguageDetectionEnglishDutch/gain"
	"go.uber.org/zap"
)

// DefaultStumpCap is the stump cap used when none is configured
const DefaultStumpCap = 10

/*
Config holds the parameters for training an ensemble.

StumpCap bounds the number of stumps: features are taken in ranking order
and training stops when the count of features taken reaches the cap, so
at most StumpCap-1 stumps are trained. Zero means DefaultStumpCap.

Logger receives debug entries for every round. Nil disables logging.

OnRound, when set, is called after every round.
*/
type Config struct {
	StumpCap int
	Logger   *zap.Logger
	OnRound  func(Round)
}

/*
Round describes a boosting round once the sample weights have been
updated. Weights is a copy of the normalized weights, aligned with the
positions of the samples in the training set.
*/
type Round struct {
	Index       int
	Feature     feature.Feature
	Error       float64
	AmountOfSay float64
	Weights     []float64
}

/*
Rank takes a set and returns the columns of its features ordered by
decreasing information gain on the whole set. Ties keep schema order.
An empty set has no ranking.
*/
func Rank(s *dataset.Set) []int {
	if s.Count() == 0 {
		return nil
	}
	all := s.All()
	remaining := gain.Columns(s)
	var ranking []int
	for !remaining.Empty() {
		col, ok := gain.Strongest(all, remaining)
		if !ok {
			break
		}
		ranking = append(ranking, col)
		remaining.Delete(col)
	}
	return ranking
}

/*
Train takes a context, a set of labelled samples and a Config and returns an
ensemble with a stump for each of the top ranked features. Samples start
with equal weights; after every stump the weights of the samples it got
wrong grow, the rest shrink, and all of them are normalized to add up to 1.

An empty set yields an empty ensemble. An error is returned if the context
is cancelled while training.
*/
func Train(ctx context.Context, s *dataset.Set, cfg Config) (*Ensemble, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	e := &Ensemble{}
	n := s.Count()
	if n == 0 {
		return e, nil
	}
	limit := cfg.StumpCap
	if limit <= 0 {
		limit = DefaultStumpCap
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	incorrect := make([]bool, n)
	all := s.All()
	var count int
	for _, col := range Rank(s) {
		count++
		if count == limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		st, errSum := fit(all, col, weights, incorrect)
		e.Stumps = append(e.Stumps, st)
		reweight(weights, incorrect, st.AmountOfSay)
		log.Debug("stump",
			zap.Int("round", count),
			zap.String("feature", st.Feature.Name()),
			zap.Float64("error", errSum),
			zap.Float64("amount_of_say", st.AmountOfSay),
		)
		if cfg.OnRound != nil {
			cfg.OnRound(Round{
				Index:       count - 1,
				Feature:     st.Feature,
				Error:       errSum,
				AmountOfSay: st.AmountOfSay,
				Weights:     append([]float64(nil), weights...),
			})
		}
	}
	log.Debug("ensemble trained", zap.Int("stumps", len(e.Stumps)), zap.Int("samples", n))
	return e, nil
}

/*
AmountOfSay takes the weighted error of a stump and returns its say in the
ensemble vote. The result is finite for any error in [0, 1].
*/
func AmountOfSay(errSum float64) float64 {
	num := 1 - errSum
	if num < gain.Epsilon {
		num = gain.Epsilon
	}
	return 0.5 * math.Log(num/(errSum+gain.Epsilon))
}

// fit builds the stump on column col and marks the samples it gets wrong
func fit(ss dataset.Subset, col int, weights []float64, incorrect []bool) (Stump, float64) {
	s := ss.Set()
	pos, neg := ss.Split(col)
	st := Stump{
		Feature: s.Feature(col),
		True:    feature.OutcomeFor(gain.ClassProbability(pos) >= 0.5),
		False:   feature.OutcomeFor(gain.ClassProbability(neg) >= 0.5),
	}
	var errSum float64
	for _, r := range ss.Rows() {
		incorrect[r] = st.Decide(s.Value(r, col)).Label() != s.Label(r)
		if incorrect[r] {
			errSum += weights[r]
		}
	}
	st.AmountOfSay = AmountOfSay(errSum)
	return st, errSum
}

func reweight(weights []float64, incorrect []bool, say float64) {
	var total float64
	for i, w := range weights {
		if incorrect[i] {
			weights[i] = w * math.Exp(say)
		} else {
			weights[i] = w * math.Exp(-say)
		}
		total += weights[i]
	}
	factor := 1 / total
	for i := range weights {
		weights[i] *= factor
	}
}
