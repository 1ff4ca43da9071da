package strategy

import (
	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/letterset"
	"github.com/powellquiring/versebot/wordle"
)

// Eliminator guesses the candidate whose distinct letters occur in the most
// candidates. A repeated letter counts once, both when counting candidates
// and when scoring a word. Ties go to the first candidate in order.
type Eliminator struct {
	counts [letterset.Letters]int
	of     *candidate.Set
}

func (e *Eliminator) Name() string { return KindEliminator }

// Precalculate counts, for each letter, the candidates containing it at least once
func (e *Eliminator) Precalculate(c *candidate.Set, s *State) {
	e.counts = LetterCounts(c)
	e.of = c
}

func (e *Eliminator) SelectGuess(c *candidate.Set, s *State) (wordle.Word, error) {
	if e.of != c {
		e.Precalculate(c, s)
	}
	var ret wordle.Word
	best := -1
	for _, word := range c.Range {
		if score := e.Score(word); score > best {
			best = score
			ret = word
		}
	}
	return ret, nil
}

// Score is the sum of the counts of the distinct letters of word
func (e *Eliminator) Score(word wordle.Word) int {
	score := 0
	for _, letter := range letterset.OfString(string(word)).Range {
		score += e.counts[letter-'A']
	}
	return score
}

func (e *Eliminator) Reset() {
	e.counts = [letterset.Letters]int{}
	e.of = nil
}

// LetterCounts returns, per letter, the number of words in c containing it
func LetterCounts(c *candidate.Set) [letterset.Letters]int {
	var ret [letterset.Letters]int
	for _, word := range c.Range {
		for _, letter := range letterset.OfString(string(word)).Range {
			ret[letter-'A']++
		}
	}
	return ret
}
