package dataset

/*
Subset is a view on some of the samples of a Set, keeping their relative
order. Subsets share the schema of the Set they come from and never copy
or modify its samples.
*/
type Subset struct {
	set  *Set
	rows []int
}

// Set returns the set the subset is a view on
func (ss Subset) Set() *Set {
	return ss.set
}

// Rows returns the positions in the set of the samples in the subset
func (ss Subset) Rows() []int {
	return ss.rows
}

// Count returns the number of samples in the subset
func (ss Subset) Count() int {
	return len(ss.rows)
}

// Positives returns the number of samples in the subset labelled true
func (ss Subset) Positives() int {
	var n int
	for _, r := range ss.rows {
		if ss.set.labels[r] {
			n++
		}
	}
	return n
}

/*
Split partitions the subset by the value of the feature at column col. It
returns the samples for which the feature is true and those for which it is
false, both in their original order.
*/
func (ss Subset) Split(col int) (Subset, Subset) {
	var pos, neg []int
	for _, r := range ss.rows {
		if ss.set.values[r][col] {
			pos = append(pos, r)
		} else {
			neg = append(neg, r)
		}
	}
	return Subset{ss.set, pos}, Subset{ss.set, neg}
}

// Samples returns views on the samples of the subset, in order
func (ss Subset) Samples() []Sample {
	result := make([]Sample, len(ss.rows))
	for i, r := range ss.rows {
		result[i] = row{ss.set, r}
	}
	return result
}
