package wordle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(t *testing.T, s string) Rating {
	r, err := ParseRating(s)
	require.NoError(t, err)
	return r
}

func TestRate(t *testing.T) {
	tests := []struct {
		secret, guess, want string
	}{
		{"TRACE", "CRANE", "12202"},
		{"SALLY", "SLAYS", "21110"},
		{"ABBEY", "BABES", "11220"},
		{"ABBEY", "KEBAB", "01211"},
		{"ROBOT", "FLOOR", "00121"},
		{"SPEED", "ERASE", "10011"},
		{"EERIE", "EEEEE", "22002"},
		{"CAT", "TAC", "121"},
		{"BOOKKEEPERS", "KEEPERBOOKS", "11111111112"},
	}
	for _, test := range tests {
		t.Run(test.secret+"/"+test.guess, func(t *testing.T) {
			assert.Equal(t, test.want, Rate(Word(test.secret), Word(test.guess)).String())
		})
	}
}

func TestRateDuplicateNotDoubleCounted(t *testing.T) {
	// SALLY has a single S, only the first S of SLAYS may be colored
	r := Rate("SALLY", "SLAYS")
	colored := 0
	for i, color := range r {
		if Word("SLAYS")[i] == 'S' && color != Absent {
			colored++
		}
	}
	assert.Equal(t, 1, colored)
	assert.Equal(t, Correct, r[0])
	assert.Equal(t, Absent, r[4])
}

func TestRateSelfIsSolved(t *testing.T) {
	for _, word := range MustParseWords("crane", "sissy", "eerie", "abc", "bookkeepers") {
		assert.True(t, Rate(word, word).Solved(), word)
	}
}

func TestRateLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Rate("CRANE", "CRANES") })
}

func TestSecret(t *testing.T) {
	r, err := Secret("TRACE").Rate("CRANE")
	require.NoError(t, err)
	assert.Equal(t, Rating{Present, Correct, Correct, Absent, Correct}, r)

	_, err = Secret("TRACE").Rate("CRANES")
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestParseWord(t *testing.T) {
	word, err := ParseWord(" crane ")
	require.NoError(t, err)
	assert.Equal(t, Word("CRANE"), word)

	for _, bad := range []string{"ab", "thirteenchars", "cr4ne", "héllo", ""} {
		_, err := ParseWord(bad)
		assert.ErrorIs(t, err, ErrInvalidWord, bad)
	}
	assert.Panics(t, func() { MustParseWord("x") })
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, Rating{Present, Present, Correct, Absent, Correct}, rating(t, "11202"))
	assert.Equal(t, Rating{Present, Present, Correct, Absent, Correct}, rating(t, "yygrg"))
	assert.Equal(t, Rating{Absent, Absent, Correct}, rating(t, "bxG"))
	assert.Equal(t, "yygrg", rating(t, "11202").Colors())

	_, err := ParseRating("1z2")
	assert.ErrorIs(t, err, ErrInvalidRating)
	var invalid *InvalidRatingError
	assert.True(t, errors.As(err, &invalid))
}

func TestRatingValidate(t *testing.T) {
	assert.NoError(t, rating(t, "00000").Validate("CRANE"))

	err := rating(t, "0000").Validate("CRANE")
	assert.ErrorIs(t, err, ErrInvalidRating)

	err = Rating{0, 1, 3, 0, 0}.Validate("CRANE")
	assert.ErrorIs(t, err, ErrInvalidRating)
	assert.Contains(t, err.Error(), "position 2")
	assert.Equal(t, "01?00", Rating{0, 1, 3, 0, 0}.String())
}

func TestSolved(t *testing.T) {
	assert.True(t, rating(t, "222").Solved())
	assert.False(t, rating(t, "221").Solved())
	assert.False(t, Rating{}.Solved())
}

func TestDictionary(t *testing.T) {
	d, err := NewDictionaryFromStrings([]string{"crane", "slate", "trace", "crane"})
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 5, d.Length())
	index, ok := d.Lookup("TRACE")
	assert.True(t, ok)
	assert.Equal(t, Index(2), index)
	index, _ = d.Lookup("CRANE")
	assert.Equal(t, Index(0), index)
	assert.Equal(t, Word("SLATE"), d.Word(1))
	assert.False(t, d.Contains("TRAIN"))

	words := d.Words()
	words[0] = "XXXXX"
	assert.Equal(t, Word("CRANE"), d.Word(0))
}

func TestDictionaryConfigurationErrors(t *testing.T) {
	_, err := NewDictionary(nil)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewDictionary(MustParseWords("crane", "cranes"))
	assert.ErrorIs(t, err, ErrConfiguration)
	var config *ConfigurationError
	require.True(t, errors.As(err, &config))
	assert.Contains(t, config.Reason, "not uniform")

	_, err = NewDictionary([]Word{"AB", "CD"})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewDictionaryFromStrings([]string{"crane", "sl4te"})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestEmptyCandidateSetError(t *testing.T) {
	err := error(&EmptyCandidateSetError{Guesses: []Word{"CRANE"}, Ratings: []Rating{{0, 0, 0, 0, 1}}})
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
	assert.Equal(t, "empty candidate set after CRANE/00001", err.Error())
}
