package strategy

import (
	"math/rand/v2"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/wordle"
)

// openings are sequences of words with pairwise disjoint letters, found offline with FindOpening
var openings = map[int][]wordle.Word{
	5: {"FJORD", "GUCKS", "NYMPH", "VIBEX", "WALTZ"},
}

// Opening returns the built in opening sequence for length
func Opening(length int) ([]wordle.Word, bool) {
	ret, ok := openings[length]
	if !ok {
		return nil, false
	}
	return append([]wordle.Word(nil), ret...), true
}

// Clique plays a fixed opening sequence, then guesses a random remaining
// candidate it has not guessed yet.
type Clique struct {
	opening []wordle.Word
	rng     *rand.Rand
}

// NewClique uses opening when given, otherwise the built in sequence for length
func NewClique(length int, opening []wordle.Word, rng *rand.Rand) (*Clique, error) {
	if len(opening) == 0 {
		builtin, ok := Opening(length)
		if !ok {
			return nil, wordle.Configurationf("no opening sequence for %d letter words", length)
		}
		opening = builtin
	}
	ret := &Clique{opening: make([]wordle.Word, len(opening)), rng: rng}
	for i, word := range opening {
		parsed, err := wordle.ParseWord(string(word))
		if err != nil {
			return nil, wordle.Configurationf("opening: %v", err)
		}
		if parsed.Len() != length {
			return nil, wordle.Configurationf("opening word %q has %d letters, want %d", parsed, parsed.Len(), length)
		}
		ret.opening[i] = parsed
	}
	return ret, nil
}

func (cl *Clique) Name() string { return KindClique }

func (cl *Clique) Opening() []wordle.Word {
	return append([]wordle.Word(nil), cl.opening...)
}

func (cl *Clique) SelectGuess(c *candidate.Set, s *State) (wordle.Word, error) {
	if turn := s.Turn(); turn < len(cl.opening) {
		return cl.opening[turn], nil
	}
	fresh := make([]wordle.Word, 0, c.Len())
	for _, word := range c.Range {
		if !s.Guessed(word) {
			fresh = append(fresh, word)
		}
	}
	if len(fresh) == 0 {
		return c.At(cl.rng.IntN(c.Len())), nil
	}
	return fresh[cl.rng.IntN(len(fresh))], nil
}
