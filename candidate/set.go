package candidate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/powellquiring/versebot/wordle"
)

// Set is an immutable view of some of the words of an Index's dictionary,
// kept in dictionary order.
type Set struct {
	index   *Index
	bits    *bitset.BitSet
	members []uint
}

func newSet(index *Index, bits *bitset.BitSet) *Set {
	members := make([]uint, bits.Count())
	bits.NextSetMany(0, members)
	return &Set{index: index, bits: bits, members: members}
}

func (s *Set) Index() *Index {
	return s.index
}

func (s *Set) Len() int {
	return len(s.members)
}

func (s *Set) Empty() bool {
	return len(s.members) == 0
}

// At returns the n-th member, n in 0..Len()-1
func (s *Set) At(n int) wordle.Word {
	return s.index.dict.Word(wordle.Index(s.members[n]))
}

// First returns the first member in dictionary order
func (s *Set) First() (wordle.Word, bool) {
	if s.Empty() {
		return "", false
	}
	return s.At(0), true
}

func (s *Set) Contains(word wordle.Word) bool {
	index, ok := s.index.dict.Lookup(word)
	return ok && s.bits.Test(uint(index))
}

func (s *Set) Words() []wordle.Word {
	ret := make([]wordle.Word, len(s.members))
	for i := range s.members {
		ret[i] = s.At(i)
	}
	return ret
}

func (s *Set) Range(yield func(n int, word wordle.Word) bool) {
	for n := range s.members {
		if !yield(n, s.At(n)) {
			return
		}
	}
}

// Subset reports whether every member of s is also in other
func (s *Set) Subset(other *Set) bool {
	return s.bits.DifferenceCardinality(other.bits) == 0
}

func (s *Set) Equal(other *Set) bool {
	return s.bits.Equal(other.bits)
}
