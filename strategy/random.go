package strategy

import (
	"math/rand/v2"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/wordle"
)

// RandomFull guesses any dictionary word and never learns from ratings
type RandomFull struct {
	rng *rand.Rand
}

func (r *RandomFull) Name() string { return KindRandomFull }

func (r *RandomFull) SelectGuess(c *candidate.Set, s *State) (wordle.Word, error) {
	return s.Dictionary.Word(wordle.Index(r.rng.IntN(s.Dictionary.Len()))), nil
}

// RandomPartial guesses any word still consistent with the ratings
type RandomPartial struct {
	rng *rand.Rand
}

func (r *RandomPartial) Name() string { return KindRandomPartial }

func (r *RandomPartial) SelectGuess(c *candidate.Set, s *State) (wordle.Word, error) {
	return c.At(r.rng.IntN(c.Len())), nil
}
