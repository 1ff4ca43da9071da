package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/versebot/wordle"
)

func TestEmbeddedAllLengths(t *testing.T) {
	for _, length := range Lengths() {
		words, err := Embedded(length)
		require.NoError(t, err, length)
		assert.Greater(t, len(words), 100, length)
		_, err = wordle.NewDictionary(words)
		assert.NoError(t, err, length)
	}
}

func TestEmbeddedContainsOpening(t *testing.T) {
	d, err := wordle.NewDictionary(MustEmbedded(5))
	require.NoError(t, err)
	for _, word := range wordle.MustParseWords("fjord", "gucks", "nymph", "vibex", "waltz", "crane", "slate", "trace") {
		assert.True(t, d.Contains(word), word)
	}
}

func TestEmbeddedUnsupported(t *testing.T) {
	_, err := Embedded(2)
	assert.ErrorIs(t, err, wordle.ErrConfiguration)
	_, err = Embedded(13)
	assert.ErrorIs(t, err, wordle.ErrConfiguration)
	assert.Panics(t, func() { MustEmbedded(13) })
}

func TestParse(t *testing.T) {
	input := `# comment
crane

 Slate
TRACE
crane
`
	words, err := Parse(strings.NewReader(input), "test", 5)
	require.NoError(t, err)
	assert.Equal(t, []wordle.Word{"CRANE", "SLATE", "TRACE"}, words)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, input, contains string
	}{
		{"length", "crane\ncranes\n", "test:2"},
		{"letters", "crane\ncr4ne\n", "test:2"},
		{"empty", "# nothing\n\n", "empty"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.input), "test", 5)
			assert.ErrorIs(t, err, wordle.ErrConfiguration)
			assert.ErrorContains(t, err, test.contains)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(3)), []byte("cat\ndog\n"), 0o644))
	words, err := Load(dir, 3)
	require.NoError(t, err)
	assert.Equal(t, wordle.MustParseWords("cat", "dog"), words)

	words, err = LoadOrEmbedded(dir, 3)
	require.NoError(t, err)
	assert.Len(t, words, 2)

	_, err = Load(dir, 4)
	assert.ErrorIs(t, err, wordle.ErrConfiguration)

	words, err = LoadOrEmbedded("", 4)
	require.NoError(t, err)
	assert.Equal(t, MustEmbedded(4), words)
}

func TestLengths(t *testing.T) {
	lengths := Lengths()
	assert.Equal(t, 3, lengths[0])
	assert.Equal(t, 12, lengths[len(lengths)-1])
	assert.Len(t, lengths, 10)
}
