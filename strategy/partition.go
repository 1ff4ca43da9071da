package strategy

import (
	"sort"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/wordle"
)

// fullPoolLimit is the candidate count at or below which every dictionary
// word is tried as a guess, not just the candidates
const fullPoolLimit = 64

type WordScore struct {
	Value wordle.Word
	Score int // lower is better
}

// Partition guesses the word that leaves the fewest candidates on average.
// A guess scores the sum, over every candidate secret, of the candidates
// that would remain after its rating. Candidates get a small bonus since
// they may win outright.
type Partition struct {
	opening   wordle.Word
	openingOf *candidate.Index
}

func (p *Partition) Name() string { return KindPartition }

func (p *Partition) SelectGuess(c *candidate.Set, s *State) (wordle.Word, error) {
	if c.Len() <= 2 {
		return c.At(0), nil
	}
	// the first guess only depends on the word list, remember it across games
	first := s.Turn() == 0 && c.Len() == c.Index().Dictionary().Len()
	if first && p.openingOf == c.Index() {
		return p.opening, nil
	}
	scores := p.SortedGuesses(c, s)
	if first {
		p.opening, p.openingOf = scores[0].Value, c.Index()
	}
	return scores[0].Value, nil
}

// SortedGuesses scores the guess pool, best first, ties in pool order
func (p *Partition) SortedGuesses(c *candidate.Set, s *State) []WordScore {
	pool := c.Words()
	if c.Len() <= fullPoolLimit {
		pool = s.Dictionary.Words()
	}
	ret := make([]WordScore, 0, len(pool))
	buckets := make(map[int]int, c.Len())
	for _, guess := range pool {
		clear(buckets)
		for _, solution := range c.Range {
			buckets[ratingCode(wordle.Rate(solution, guess))]++
		}
		score := 0
		for _, size := range buckets {
			score += size * size
		}
		if c.Contains(guess) {
			score -= 2
		}
		ret = append(ret, WordScore{Value: guess, Score: score})
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Score < ret[j].Score
	})
	return ret
}

// ratingCode packs a rating into a base 3 number
func ratingCode(r wordle.Rating) int {
	code := 0
	for _, color := range r {
		code = code*3 + int(color)
	}
	return code
}
