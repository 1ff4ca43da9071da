package sim

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
	"github.com/powellquiring/versebot/wordlist"
)

func TestRun(t *testing.T) {
	words := wordlist.MustEmbedded(5)
	secrets := RandomSecrets(words, 60, 1)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	var progress atomic.Int64

	reports, err := Run(context.Background(), words, Config{
		Strategies: []string{strategy.KindEliminator, "prng", strategy.KindClique},
		Secrets:    secrets,
		Length:     5,
		MaxGuesses: 6,
		Workers:    4,
		Seed:       7,
	}, WithMetrics(metrics), WithProgress(func() { progress.Add(1) }))
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, int64(180), progress.Load())

	assert.Equal(t, strategy.KindEliminator, reports[0].Strategy)
	assert.Equal(t, strategy.KindRandomPartial, reports[1].Strategy)
	assert.Equal(t, strategy.KindClique, reports[2].Strategy)
	for _, report := range reports {
		assert.Equal(t, 60, report.Played, report.Strategy)
		assert.Zero(t, report.Errors, report.Strategy)
		assert.Len(t, report.Histogram, 7)
		solved := 0
		for _, count := range report.Histogram {
			solved += count
		}
		assert.Equal(t, report.Correct, solved)
		if report.Correct > 0 {
			assert.GreaterOrEqual(t, report.Average, 1.0)
			assert.LessOrEqual(t, report.Average, 6.0)
		}
		assert.InDelta(t, float64(report.Correct)/60, report.SuccessRate(), 1e-9)

		assert.Equal(t, float64(report.Correct), testutil.ToFloat64(metrics.Games.WithLabelValues(report.Strategy, ResultSolved)))
		assert.Equal(t, float64(report.Played-report.Correct), testutil.ToFloat64(metrics.Games.WithLabelValues(report.Strategy, ResultFailed)))
	}
	assert.Greater(t, reports[0].Correct, 30)
}

func TestRunIsRepeatable(t *testing.T) {
	words := wordlist.MustEmbedded(4)
	cfg := Config{
		Strategies: []string{strategy.KindRandomPartial},
		Secrets:    RandomSecrets(words, 40, 3),
		Length:     4,
		MaxGuesses: 6,
		Workers:    3,
		Seed:       11,
	}
	first, err := Run(context.Background(), words, cfg)
	require.NoError(t, err)
	second, err := Run(context.Background(), words, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunConfigurationErrors(t *testing.T) {
	words := wordlist.MustEmbedded(5)
	secrets := wordle.MustParseWords("crane")
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no strategies", Config{Secrets: secrets, Length: 5, MaxGuesses: 6}},
		{"no secrets", Config{Strategies: []string{"eliminator"}, Length: 5, MaxGuesses: 6}},
		{"guesses", Config{Strategies: []string{"eliminator"}, Secrets: secrets, Length: 5}},
		{"length", Config{Strategies: []string{"eliminator"}, Secrets: secrets, Length: 4, MaxGuesses: 6}},
		{"secret length", Config{Strategies: []string{"eliminator"}, Secrets: wordle.MustParseWords("cranes"), Length: 5, MaxGuesses: 6}},
		{"unknown strategy", Config{Strategies: []string{"oracle"}, Secrets: secrets, Length: 5, MaxGuesses: 6}},
		{"clique length", Config{Strategies: []string{"clique"}, Secrets: wordle.MustParseWords("abbot"), Length: 5, MaxGuesses: 6, Opening: wordle.MustParseWords("cat")}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Run(context.Background(), words, test.cfg)
			assert.ErrorIs(t, err, wordle.ErrConfiguration)
		})
	}
}

func TestRunCountsGameErrors(t *testing.T) {
	words := wordle.MustParseWords("crane", "slate", "trace")
	reports, err := Run(context.Background(), words, Config{
		Strategies: []string{strategy.KindEliminator},
		Secrets:    wordle.MustParseWords("boxed", "trace"),
		Length:     5,
		MaxGuesses: 6,
		Workers:    1,
	})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 2, reports[0].Played)
	assert.Equal(t, 1, reports[0].Errors)
	assert.Equal(t, 1, reports[0].Correct)
	assert.Equal(t, []wordle.Word{"BOXED"}, reports[0].Missed)
}

func TestRunCancelled(t *testing.T) {
	words := wordlist.MustEmbedded(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, words, Config{
		Strategies: []string{strategy.KindEliminator},
		Secrets:    RandomSecrets(words, 10, 1),
		Length:     5,
		MaxGuesses: 6,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandomSecrets(t *testing.T) {
	words := wordle.MustParseWords("crane", "slate", "trace")
	secrets := RandomSecrets(words, 20, 5)
	assert.Len(t, secrets, 20)
	for _, secret := range secrets {
		assert.Contains(t, words, secret)
	}
	assert.Equal(t, secrets, RandomSecrets(words, 20, 5))
	assert.Nil(t, RandomSecrets(nil, 3, 1))
}
