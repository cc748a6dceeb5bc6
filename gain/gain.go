/*
Package gain measures how much information a boolean feature provides
about the label of a set of samples.
*/
package gain

import (
	"math"

	"github.com/anuragkanade/LanguageDetectionEnglishDutch/dataset"
	"github.com/yourbasic/bit"
)

// Epsilon is the float64 machine epsilon, added to avoid log(0) and
// divisions by zero.
const Epsilon = 0x1p-52

/*
Entropy takes the probability p of a sample being labelled true and returns
the binary entropy of the distribution.
*/
func Entropy(p float64) float64 {
	q := 1 - p
	return -(p*math.Log2(p+Epsilon) + q*math.Log2(q+Epsilon))
}

/*
Probability takes a count of positive and negative samples and returns the
probability of a sample being positive.
*/
func Probability(positives, negatives int) float64 {
	return float64(positives) / (float64(positives+negatives) + Epsilon)
}

// ClassProbability returns the probability of a sample in the subset being labelled true
func ClassProbability(ss dataset.Subset) float64 {
	positives := ss.Positives()
	return Probability(positives, ss.Count()-positives)
}

/*
Remainder takes the two groups a subset has been split into and returns the
entropy left after the split: the entropy of each group weighted by its size.
*/
func Remainder(pos, neg dataset.Subset) float64 {
	total := float64(pos.Count() + neg.Count())
	if total == 0 {
		return 0
	}
	return float64(pos.Count())/total*Entropy(ClassProbability(pos)) +
		float64(neg.Count())/total*Entropy(ClassProbability(neg))
}

/*
Gain returns the information gained on the label of the subset by splitting it
on the feature at column col.
*/
func Gain(ss dataset.Subset, col int) float64 {
	pos, neg := ss.Split(col)
	return Entropy(ClassProbability(ss)) - Remainder(pos, neg)
}

/*
Best takes a subset and the set of columns still available to split on and
returns the column with the greatest gain. Only strictly positive gains
qualify and ties are resolved in favour of the first column. The returned
boolean is false when no column qualifies or the subset is empty.
*/
func Best(ss dataset.Subset, active *bit.Set) (int, bool) {
	if ss.Count() == 0 {
		return 0, false
	}
	best, found := 0, false
	var max float64
	active.Visit(func(col int) bool {
		if g := Gain(ss, col); g > max {
			best, max, found = col, g, true
		}
		return false
	})
	return best, found
}

/*
Strongest takes a subset and the set of columns still available and returns
the column with the greatest gain, whatever its sign. The first column is
taken unless a later one has a strictly greater gain. The returned boolean is
false only when there are no columns available.
*/
func Strongest(ss dataset.Subset, active *bit.Set) (int, bool) {
	best, found := 0, false
	var max float64
	active.Visit(func(col int) bool {
		if g := Gain(ss, col); !found || g > max {
			best, max, found = col, g, true
		}
		return false
	})
	return best, found
}

/*
Columns returns a bit set with every column in the schema of the given set
*/
func Columns(s *dataset.Set) *bit.Set {
	return new(bit.Set).AddRange(0, s.Width())
}
