package sentence

import "strings"

/*
Predicate is a test on a lower-cased sentence
*/
type Predicate interface {
	Holds(line string) bool
}

/*
Words is a predicate that holds for lines containing any of its words or
phrases as whole, space-delimited terms.
*/
type Words []string

/*
Runes is a predicate that holds for lines containing any of its runes.
*/
type Runes string

// Holds returns whether the line contains " w " for any w in the words
func (ws Words) Holds(line string) bool {
	for _, w := range ws {
		if strings.Contains(line, " "+w+" ") {
			return true
		}
	}
	return false
}

// Holds returns whether the line contains any of the runes
func (rs Runes) Holds(line string) bool {
	return strings.ContainsAny(line, string(rs))
}
