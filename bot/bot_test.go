package bot

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/constraint"
	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
	"github.com/powellquiring/versebot/wordlist"
)

// scripted plays its words in order, then the first candidate
type scripted struct {
	words []wordle.Word
}

func (s *scripted) Name() string { return "scripted" }

func (s *scripted) SelectGuess(c *candidate.Set, st *strategy.State) (wordle.Word, error) {
	if st.Turn() < len(s.words) {
		return s.words[st.Turn()], nil
	}
	word, _ := c.First()
	return word, nil
}

func scenario() []wordle.Word {
	return wordle.MustParseWords("crane", "slate", "trace")
}

func TestNewConfigurationErrors(t *testing.T) {
	s := &scripted{}
	tests := []struct {
		name       string
		words      []wordle.Word
		length     int
		maxGuesses int
		strategy   strategy.Strategy
	}{
		{"empty", nil, 5, 6, s},
		{"not uniform", wordle.MustParseWords("crane", "cranes"), 5, 6, s},
		{"length", scenario(), 4, 6, s},
		{"guesses", scenario(), 5, 0, s},
		{"strategy", scenario(), 5, 6, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.words, test.length, test.maxGuesses, test.strategy)
			assert.ErrorIs(t, err, wordle.ErrConfiguration)
		})
	}
}

func TestScenario(t *testing.T) {
	var phases []Phase
	r, err := New(scenario(), 5, 6, &scripted{words: []wordle.Word{"CRANE"}}, WithObserver(func(p Phase) {
		phases = append(phases, p)
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Candidates().Len())

	result, err := r.Run("TRACE")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.GuessCount)
	assert.Equal(t, wordle.MustParseWords("crane", "trace"), result.Guesses)
	assert.Equal(t, wordle.Rating{1, 2, 2, 0, 2}, result.Ratings[0])
	assert.True(t, result.Ratings[1].Solved())
	assert.Equal(t, []wordle.Word{"TRACE"}, r.Candidates().Words())
	assert.Equal(t, PhaseDone, r.Phase())
	assert.Equal(t, []Phase{
		PhasePrecalc, PhaseSelect, PhaseRate, PhaseCheck, PhaseUpdate,
		PhasePrecalc, PhaseSelect, PhaseRate, PhaseCheck, PhaseDone,
	}, phases)
}

func TestOutOfGuesses(t *testing.T) {
	r, err := New(scenario(), 5, 1, &scripted{words: []wordle.Word{"CRANE"}})
	require.NoError(t, err)
	result, err := r.Run("TRACE")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.GuessCount)
	assert.Equal(t, PhaseDone, r.Phase())
	assert.Equal(t, []wordle.Word{"TRACE"}, r.Candidates().Words())
}

func TestEmptyCandidateSet(t *testing.T) {
	r, err := New(scenario(), 5, 6, &strategy.Eliminator{})
	require.NoError(t, err)
	// BOXED is not in the list, the first rating leaves nothing
	result, err := r.Run("BOXED")
	require.Error(t, err)
	assert.ErrorIs(t, err, wordle.ErrEmptyCandidateSet)
	var empty *wordle.EmptyCandidateSetError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, []wordle.Word{"TRACE"}, empty.Guesses)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.GuessCount)
}

func TestRaterErrors(t *testing.T) {
	r, err := New(scenario(), 5, 6, &strategy.Eliminator{})
	require.NoError(t, err)

	_, err = r.RunWith(RaterFunc(func(guess wordle.Word) (wordle.Rating, error) {
		return wordle.Rating{0, 1, 3, 0, 0}, nil
	}))
	assert.ErrorIs(t, err, wordle.ErrInvalidRating)

	_, err = r.RunWith(RaterFunc(func(guess wordle.Word) (wordle.Rating, error) {
		return wordle.Rating{0, 1}, nil
	}))
	assert.ErrorIs(t, err, wordle.ErrInvalidRating)

	boom := errors.New("boom")
	_, err = r.RunWith(RaterFunc(func(guess wordle.Word) (wordle.Rating, error) {
		return nil, boom
	}))
	assert.ErrorIs(t, err, boom)

	_, err = r.Run("TRACES")
	assert.ErrorIs(t, err, wordle.ErrInvalidWord)
}

func TestResetAndResetWordList(t *testing.T) {
	r, err := New(scenario(), 5, 6, &strategy.Eliminator{})
	require.NoError(t, err)
	_, err = r.Run("SLATE")
	require.NoError(t, err)
	guesses, _ := r.History()
	assert.NotEmpty(t, guesses)

	r.Reset()
	guesses, ratings := r.History()
	assert.Empty(t, guesses)
	assert.Empty(t, ratings)
	assert.Equal(t, 3, r.Candidates().Len())
	assert.Equal(t, PhasePrecalc, r.Phase())

	require.NoError(t, r.ResetWordList(wordle.MustParseWords("abbey", "kebab")))
	assert.Equal(t, wordle.MustParseWords("abbey", "kebab"), r.Candidates().Words())
	result, err := r.Run("KEBAB")
	require.NoError(t, err)
	assert.True(t, result.Success)

	assert.ErrorIs(t, r.ResetWordList(wordle.MustParseWords("cat")), wordle.ErrConfiguration)

	require.NoError(t, r.ResetWordList(nil))
	assert.Equal(t, scenario(), r.Candidates().Words())
}

func TestHistoryIsCopy(t *testing.T) {
	r, err := New(scenario(), 5, 6, &scripted{words: []wordle.Word{"CRANE"}})
	require.NoError(t, err)
	_, err = r.Run("TRACE")
	require.NoError(t, err)
	guesses, ratings := r.History()
	guesses[0] = "XXXXX"
	ratings[0][0] = wordle.Correct
	again, againRatings := r.History()
	assert.Equal(t, wordle.Word("CRANE"), again[0])
	assert.Equal(t, wordle.Present, againRatings[0][0])
}

// TestEliminatorSoundAndTerminates plays every embedded 5 letter word and checks
// the secret is never eliminated and no game runs past the guess limit
func TestEliminatorSoundAndTerminates(t *testing.T) {
	words := wordlist.MustEmbedded(5)
	const maxGuesses = 6
	var r *Runner
	var secret wordle.Word
	r, err := New(words, 5, maxGuesses, &strategy.Eliminator{}, WithObserver(func(p Phase) {
		if p == PhaseSelect && !r.Candidates().Contains(secret) {
			t.Fatalf("secret %s eliminated, model %s", secret, r.Model())
		}
	}))
	require.NoError(t, err)
	solved := 0
	for _, secret = range words {
		result, err := r.Run(secret)
		require.NoError(t, err, secret)
		require.LessOrEqual(t, result.GuessCount, maxGuesses)
		if result.Success {
			solved++
			assert.Equal(t, secret, result.Guesses[len(result.Guesses)-1])
		} else {
			assert.Equal(t, maxGuesses, result.GuessCount)
		}
	}
	assert.Greater(t, solved, len(words)/2)
}

func TestAllStrategiesAllLengths(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, length := range wordlist.Lengths() {
		words := wordlist.MustEmbedded(length)
		dict, err := wordle.NewDictionary(words)
		require.NoError(t, err)
		index := candidate.NewIndex(dict)
		for _, kind := range strategy.Kinds() {
			s, err := strategy.New(kind, length, strategy.WithSeed(uint64(length)))
			if kind == strategy.KindClique && length != 5 {
				require.ErrorIs(t, err, wordle.ErrConfiguration)
				continue
			}
			require.NoError(t, err)
			r, err := NewFromIndex(index, 6, s)
			require.NoError(t, err)
			for range 5 {
				secret := words[rng.IntN(len(words))]
				result, err := r.Run(secret)
				require.NoError(t, err, "%s %s", kind, secret)
				assert.LessOrEqual(t, result.GuessCount, 6)
				if kind != strategy.KindRandomFull {
					assert.True(t, r.Candidates().Contains(secret), "%s %s", kind, secret)
				}
			}
		}
	}
}

// TestCliqueFallsBackToCandidates exhausts the opening sequence without
// solving and checks the next guess is a fresh candidate
func TestCliqueFallsBackToCandidates(t *testing.T) {
	words := wordlist.MustEmbedded(5)
	s, err := strategy.New(strategy.KindClique, 5, strategy.WithSeed(9))
	require.NoError(t, err)
	r, err := New(words, 5, 10, s)
	require.NoError(t, err)
	opening, _ := strategy.Opening(5)

	for _, secret := range wordle.MustParseWords("crane", "sheep", "eerie", "trace") {
		result, err := r.Run(secret)
		require.NoError(t, err)
		require.Greater(t, result.GuessCount, len(opening), secret)
		assert.Equal(t, opening, result.Guesses[:len(opening)])

		next := result.Guesses[len(opening)]
		assert.NotContains(t, result.Guesses[:len(opening)], next)
		m := constraint.New(5)
		for i := range opening {
			require.NoError(t, m.Update(result.Guesses[i], result.Ratings[i]))
		}
		assert.True(t, m.Consistent(next), "%s not a candidate after %s", next, m)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "precalc", PhasePrecalc.String())
	assert.Equal(t, "done", PhaseDone.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
