// Package candidate reduces a word list to the words still consistent with a
// constraint model.
//
// Filter works on plain slices. Index precomputes bitsets over a dictionary so
// a Set can be narrowed with a handful of intersections per guess.
package candidate

import (
	"github.com/powellquiring/versebot/constraint"
	"github.com/powellquiring/versebot/wordle"
)

// Filter returns the words consistent with m, in their original order.
// The input slice is not modified.
func Filter(words []wordle.Word, m *constraint.Model) []wordle.Word {
	ret := make([]wordle.Word, 0, len(words))
	for _, word := range words {
		if m.Consistent(word) {
			ret = append(ret, word)
		}
	}
	return ret
}
