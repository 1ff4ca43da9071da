// Package sim plays many games in parallel and summarizes how each strategy did.
package sim

import (
	"context"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/versebot/bot"
	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
)

type Config struct {
	Strategies []string
	Secrets    []wordle.Word
	Length     int
	MaxGuesses int
	// Workers is the number of games played at once, 0 uses every CPU
	Workers int
	Seed    uint64
	// Opening replaces the built in clique opening
	Opening []wordle.Word
}

// Report summarizes the games of one strategy
type Report struct {
	Strategy string `json:"strategy"`
	Played   int    `json:"played"`
	Correct  int    `json:"correct"`
	Errors   int    `json:"errors"`
	// Histogram[n] is the number of games solved with n guesses
	Histogram []int         `json:"histogram"`
	Average   float64       `json:"average"`
	Missed    []wordle.Word `json:"missed"`
}

type options struct {
	progress func()
	metrics  *Metrics
	logger   zerolog.Logger
}

type Option func(*options)

// WithProgress calls fn after every game, from many goroutines
func WithProgress(fn func()) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

type game struct {
	secret wordle.Word
	result bot.Result
	err    error
}

// task is one worker's share of the secrets for one strategy
type task struct {
	strategy int
	seed     uint64
	secrets  []wordle.Word
	games    []game
}

// Run plays every secret with every strategy and returns one report per
// strategy, in the order of cfg.Strategies. A game that fails with an error
// is counted in Report.Errors, configuration problems stop the run.
func Run(ctx context.Context, words []wordle.Word, cfg Config, opts ...Option) ([]Report, error) {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	if len(cfg.Strategies) == 0 {
		return nil, wordle.Configurationf("no strategies to simulate")
	}
	if len(cfg.Secrets) == 0 {
		return nil, wordle.Configurationf("no secrets to simulate")
	}
	if cfg.MaxGuesses < 1 {
		return nil, wordle.Configurationf("max guesses %d, want at least 1", cfg.MaxGuesses)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	dict, err := wordle.NewDictionary(words)
	if err != nil {
		return nil, err
	}
	if dict.Length() != cfg.Length {
		return nil, wordle.Configurationf("word list has %d letter words, simulation has %d", dict.Length(), cfg.Length)
	}
	for _, secret := range cfg.Secrets {
		if secret.Len() != cfg.Length {
			return nil, wordle.Configurationf("secret %q has %d letters, want %d", secret, secret.Len(), cfg.Length)
		}
	}
	names := make([]string, len(cfg.Strategies))
	for i, kind := range cfg.Strategies {
		s, err := newStrategy(kind, cfg, 0)
		if err != nil {
			return nil, err
		}
		names[i] = s.Name()
	}
	index := candidate.NewIndex(dict)

	runID := uuid.NewString()
	logger := o.logger.With().Str("run", runID).Logger()
	logger.Info().
		Strs("strategies", names).
		Int("secrets", len(cfg.Secrets)).
		Int("workers", workers).
		Int("length", cfg.Length).
		Msg("simulation started")
	start := time.Now()

	var tasks []*task
	chunk := (len(cfg.Secrets) + workers - 1) / workers
	for si := range cfg.Strategies {
		for i, part := 0, 0; i < len(cfg.Secrets); i, part = i+chunk, part+1 {
			tasks = append(tasks, &task{
				strategy: si,
				seed:     cfg.Seed + uint64(si)<<32 + uint64(part),
				secrets:  cfg.Secrets[i:min(i+chunk, len(cfg.Secrets))],
			})
		}
	}

	var played atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, t := range tasks {
		g.Go(func() error {
			s, err := newStrategy(cfg.Strategies[t.strategy], cfg, t.seed)
			if err != nil {
				return err
			}
			r, err := bot.NewFromIndex(index, cfg.MaxGuesses, s, bot.WithLogger(logger))
			if err != nil {
				return err
			}
			t.games = make([]game, 0, len(t.secrets))
			for _, secret := range t.secrets {
				if err := gctx.Err(); err != nil {
					return err
				}
				result, err := r.Run(secret)
				if err != nil {
					logger.Error().Err(err).Str("strategy", s.Name()).Str("secret", string(secret)).Msg("game failed")
				}
				t.games = append(t.games, game{secret: secret, result: result, err: err})
				o.metrics.observe(s.Name(), result, err)
				played.Add(1)
				if o.progress != nil {
					o.progress()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]Report, len(cfg.Strategies))
	for i := range reports {
		reports[i] = Report{Strategy: names[i], Histogram: make([]int, cfg.MaxGuesses+1)}
	}
	for _, t := range tasks {
		reports[t.strategy].add(t.games)
	}
	for i := range reports {
		reports[i].finish()
	}
	logger.Info().Int64("games", played.Load()).Dur("elapsed", time.Since(start)).Msg("simulation finished")
	return reports, nil
}

func newStrategy(kind string, cfg Config, seed uint64) (strategy.Strategy, error) {
	opts := []strategy.Option{strategy.WithSeed(seed)}
	if len(cfg.Opening) > 0 {
		opts = append(opts, strategy.WithOpening(cfg.Opening...))
	}
	return strategy.New(kind, cfg.Length, opts...)
}

func (r *Report) add(games []game) {
	for _, g := range games {
		r.Played++
		switch {
		case g.err != nil:
			r.Errors++
			r.Missed = append(r.Missed, g.secret)
		case g.result.Success:
			r.Correct++
			r.Histogram[g.result.GuessCount]++
		default:
			r.Missed = append(r.Missed, g.secret)
		}
	}
}

func (r *Report) finish() {
	total := 0
	for guesses, count := range r.Histogram {
		total += guesses * count
	}
	if r.Correct > 0 {
		r.Average = float64(total) / float64(r.Correct)
	}
	slices.Sort(r.Missed)
	r.Missed = slices.Compact(r.Missed)
}

// SuccessRate is the fraction of played games that were solved
func (r *Report) SuccessRate() float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Played)
}

// RandomSecrets draws n secrets from words, with replacement
func RandomSecrets(words []wordle.Word, n int, seed uint64) []wordle.Word {
	if len(words) == 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc909))
	ret := make([]wordle.Word, n)
	for i := range ret {
		ret[i] = words[rng.IntN(len(words))]
	}
	return ret
}
