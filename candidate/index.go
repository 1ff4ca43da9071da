package candidate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/powellquiring/versebot/constraint"
	"github.com/powellquiring/versebot/letterset"
	"github.com/powellquiring/versebot/wordle"
)

/*
Index holds, for a dictionary:

letters[0]['A'-'A'] set of words with first letter A, [1] second letter, ...
counts['A'-'A'][0] set of words with 1 or more A, [1] words with 2 or more A, ...

a word is represented by its index into the dictionary
*/
type Index struct {
	dict    *wordle.Dictionary
	letters [][letterset.Letters]*bitset.BitSet
	counts  [letterset.Letters][]*bitset.BitSet
	all     *bitset.BitSet
}

func NewIndex(dict *wordle.Dictionary) *Index {
	size := uint(dict.Len())
	ret := &Index{
		dict:    dict,
		letters: make([][letterset.Letters]*bitset.BitSet, dict.Length()),
		all:     bitset.New(size),
	}
	for i := range ret.letters {
		for l := range ret.letters[i] {
			ret.letters[i][l] = bitset.New(size)
		}
	}
	for w, word := range dict.Range {
		ret.all.Set(uint(w))
		var wordLetters [letterset.Letters]int
		for l := 0; l < len(word); l++ {
			letter := word[l] - 'A'
			ret.letters[l][letter].Set(uint(w))
			wordLetters[letter]++
		}
		for letter, count := range wordLetters {
			for c := 0; c < count; c++ {
				if len(ret.counts[letter]) <= c {
					ret.counts[letter] = append(ret.counts[letter], bitset.New(size))
				}
				ret.counts[letter][c].Set(uint(w))
			}
		}
	}
	return ret
}

func (x *Index) Dictionary() *wordle.Dictionary {
	return x.dict
}

// All is the set of every word in the dictionary
func (x *Index) All() *Set {
	return newSet(x, x.all.Clone())
}

// Of returns the set holding the given words, words not in the dictionary are ignored
func (x *Index) Of(words []wordle.Word) *Set {
	bits := bitset.New(uint(x.dict.Len()))
	for _, word := range words {
		if index, ok := x.dict.Lookup(word); ok {
			bits.Set(uint(index))
		}
	}
	return newSet(x, bits)
}

// Filter returns the members of set consistent with m. It is the bitset
// version of the package level Filter and selects exactly the same words.
func (x *Index) Filter(set *Set, m *constraint.Model) *Set {
	if set.index != x {
		panic("candidate: set belongs to another index")
	}
	if m.Length() != len(x.letters) {
		return newSet(x, bitset.New(uint(x.dict.Len())))
	}
	ret := set.bits.Clone()
	for i := range x.letters {
		allowed := m.Allowed(i)
		switch {
		case allowed == letterset.All:
		case allowed.Count() <= letterset.Letters/2:
			// few letters left, keep the union of their words
			keep := bitset.New(uint(x.dict.Len()))
			for _, letter := range allowed.Range {
				keep.InPlaceUnion(x.letters[i][letter-'A'])
			}
			ret.InPlaceIntersection(keep)
		default:
			for _, letter := range letterset.All.Intersection(^allowed).Range {
				ret.InPlaceDifference(x.letters[i][letter-'A'])
			}
		}
	}
	for letter, count := range m.ForcedLetters {
		counts := x.counts[letter-'A']
		if len(counts) < count {
			ret.ClearAll()
			break
		}
		ret.InPlaceIntersection(counts[count-1])
	}
	return newSet(x, ret)
}
