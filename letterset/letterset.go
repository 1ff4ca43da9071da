package letterset

import (
	"math/bits"
	"strings"
)

// Letters is the size of the alphabet, A..Z
const Letters = 26

// Set has a bit for each letter, bit 0 is 'A'
type Set uint32

// All has every letter set
const All Set = 1<<Letters - 1

// Empty has no letters
const Empty Set = 0

// index calculates the bit index of an uppercase letter
func index(letter byte) uint {
	return uint(letter - 'A')
}

// Of returns the set holding the given uppercase letters
func Of(letters ...byte) Set {
	var ret Set
	for _, letter := range letters {
		ret = ret.Add(letter)
	}
	return ret
}

// OfString returns the set of distinct letters in an uppercase word
func OfString(word string) Set {
	var ret Set
	for i := 0; i < len(word); i++ {
		ret = ret.Add(word[i])
	}
	return ret
}

func (s Set) Add(letter byte) Set {
	return s | 1<<index(letter)
}

func (s Set) Remove(letter byte) Set {
	return s &^ (1 << index(letter))
}

func (s Set) Has(letter byte) bool {
	if letter < 'A' || letter > 'Z' {
		return false
	}
	return s&(1<<index(letter)) != 0
}

// Count (number of set bits).
func (s Set) Count() int {
	return bits.OnesCount32(uint32(s))
}

func (s Set) Intersection(compare Set) Set {
	return s & compare
}

func (s Set) Union(compare Set) Set {
	return s | compare
}

// Disjoint reports whether no letter is in both sets
func (s Set) Disjoint(compare Set) bool {
	return s&compare == 0
}

// Only returns the single letter of a one element set
func (s Set) Only() (byte, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return 'A' + byte(bits.TrailingZeros32(uint32(s))), true
}

// NextSet returns the next letter index set from the specified index,
// including possibly the current index
// along with an error code (true = valid, false = no set bit found)
// for i,e := v.NextSet(0); e; i,e = v.NextSet(i + 1) {...}
func (s Set) NextSet(i uint) (uint, bool) {
	if i >= Letters {
		return 0, false
	}
	word := uint32(s) >> i
	if word == 0 {
		return 0, false
	}
	return i + uint(bits.TrailingZeros32(word)), true
}

// Range yields each letter in alphabetical order
func (s Set) Range(yield func(i int, letter byte) bool) {
	i := 0
	for idx, ok := s.NextSet(0); ok; idx, ok = s.NextSet(idx + 1) {
		if !yield(i, 'A'+byte(idx)) {
			return
		}
		i++
	}
}

func (s Set) String() string {
	if s == All {
		return "[A-Z]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, letter := range s.Range {
		b.WriteByte(letter)
	}
	b.WriteByte(']')
	return b.String()
}
