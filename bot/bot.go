// Package bot plays complete games with a strategy.
//
// A Runner owns one game at a time: its constraint model, candidate set and
// history. Each turn goes through the phases Precalc, Select, Rate, Check and
// Update until a guess is rated all correct or the guesses run out. Runners
// are not safe for concurrent use, run one per goroutine. Runners built from
// the same Index share it read only.
package bot

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/constraint"
	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
)

type Phase int

const (
	PhasePrecalc Phase = iota
	PhaseSelect
	PhaseRate
	PhaseCheck
	PhaseUpdate
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhasePrecalc:
		return "precalc"
	case PhaseSelect:
		return "select"
	case PhaseRate:
		return "rate"
	case PhaseCheck:
		return "check"
	case PhaseUpdate:
		return "update"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Rater rates a guess against a secret the runner does not know
type Rater interface {
	Rate(guess wordle.Word) (wordle.Rating, error)
}

type RaterFunc func(guess wordle.Word) (wordle.Rating, error)

func (f RaterFunc) Rate(guess wordle.Word) (wordle.Rating, error) {
	return f(guess)
}

type Result struct {
	Success    bool            `json:"success"`
	Guesses    []wordle.Word   `json:"guesses"`
	Ratings    []wordle.Rating `json:"ratings"`
	GuessCount int             `json:"guessCount"`
}

type Runner struct {
	original   *candidate.Index
	index      *candidate.Index
	maxGuesses int
	strategy   strategy.Strategy
	logger     zerolog.Logger
	observer   func(Phase)

	phase      Phase
	model      *constraint.Model
	candidates *candidate.Set
	state      *strategy.State
}

type Option func(*Runner)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithObserver calls fn on every phase the runner enters
func WithObserver(fn func(Phase)) Option {
	return func(r *Runner) {
		r.observer = fn
	}
}

// New builds a runner for a word list where every word has length letters
func New(words []wordle.Word, length, maxGuesses int, s strategy.Strategy, opts ...Option) (*Runner, error) {
	index, err := newIndex(words, length)
	if err != nil {
		return nil, err
	}
	return NewFromIndex(index, maxGuesses, s, opts...)
}

// NewFromIndex builds a runner over an existing index, which may be shared between runners
func NewFromIndex(index *candidate.Index, maxGuesses int, s strategy.Strategy, opts ...Option) (*Runner, error) {
	if maxGuesses < 1 {
		return nil, wordle.Configurationf("max guesses %d, want at least 1", maxGuesses)
	}
	if s == nil {
		return nil, wordle.Configurationf("no strategy")
	}
	ret := &Runner{
		original:   index,
		index:      index,
		maxGuesses: maxGuesses,
		strategy:   s,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.state = strategy.NewState(index.Dictionary(), maxGuesses)
	ret.Reset()
	return ret, nil
}

func newIndex(words []wordle.Word, length int) (*candidate.Index, error) {
	dict, err := wordle.NewDictionary(words)
	if err != nil {
		return nil, err
	}
	if dict.Length() != length {
		return nil, wordle.Configurationf("word list has %d letter words, game has %d", dict.Length(), length)
	}
	return candidate.NewIndex(dict), nil
}

func (r *Runner) Length() int {
	return r.index.Dictionary().Length()
}

func (r *Runner) MaxGuesses() int {
	return r.maxGuesses
}

func (r *Runner) Strategy() strategy.Strategy {
	return r.strategy
}

func (r *Runner) Phase() Phase {
	return r.phase
}

// Candidates is the current candidate set
func (r *Runner) Candidates() *candidate.Set {
	return r.candidates
}

// Model returns a copy of the current constraint model
func (r *Runner) Model() *constraint.Model {
	return r.model.Clone()
}

// History returns copies of the guesses and ratings of the current game
func (r *Runner) History() ([]wordle.Word, []wordle.Rating) {
	guesses := append([]wordle.Word(nil), r.state.Guesses...)
	ratings := make([]wordle.Rating, len(r.state.Ratings))
	for i, rating := range r.state.Ratings {
		ratings[i] = append(wordle.Rating(nil), rating...)
	}
	return guesses, ratings
}

// Reset starts over with the full current word list and an empty history
func (r *Runner) Reset() {
	r.model = constraint.New(r.Length())
	r.candidates = r.index.All()
	r.state.Dictionary = r.index.Dictionary()
	r.state.Reset()
	if resetter, ok := r.strategy.(strategy.Resetter); ok {
		resetter.Reset()
	}
	r.phase = PhasePrecalc
}

// ResetWordList rebinds the runner to words, or to the list it was built with
// when words is empty, and resets. The length of the game can not change.
func (r *Runner) ResetWordList(words []wordle.Word) error {
	if len(words) == 0 {
		r.index = r.original
		r.Reset()
		return nil
	}
	index, err := newIndex(words, r.Length())
	if err != nil {
		return err
	}
	r.index = index
	r.Reset()
	return nil
}

// Run plays one game against secret
func (r *Runner) Run(secret wordle.Word) (Result, error) {
	if secret.Len() != r.Length() {
		return Result{}, fmt.Errorf("%w: secret %q has %d letters, game has %d", wordle.ErrInvalidWord, secret, secret.Len(), r.Length())
	}
	return r.RunWith(wordle.Secret(secret))
}

// RunWith plays one game, rating each guess with rater
func (r *Runner) RunWith(rater Rater) (Result, error) {
	r.Reset()
	for {
		r.enter(PhasePrecalc)
		if pre, ok := r.strategy.(strategy.Precalculator); ok {
			pre.Precalculate(r.candidates, r.state)
		}

		r.enter(PhaseSelect)
		if r.candidates.Empty() {
			guesses, ratings := r.History()
			return r.result(false), &wordle.EmptyCandidateSetError{Guesses: guesses, Ratings: ratings}
		}
		guess, err := r.strategy.SelectGuess(r.candidates, r.state)
		if err != nil {
			return r.result(false), fmt.Errorf("select guess: %w", err)
		}

		r.enter(PhaseRate)
		rating, err := rater.Rate(guess)
		if err != nil {
			return r.result(false), fmt.Errorf("rate %s: %w", guess, err)
		}
		if err := rating.Validate(guess); err != nil {
			return r.result(false), err
		}

		r.enter(PhaseCheck)
		r.state.Record(guess, rating)
		r.logger.Debug().
			Str("strategy", r.strategy.Name()).
			Int("turn", r.state.Turn()).
			Str("guess", string(guess)).
			Str("rating", rating.String()).
			Int("candidates", r.candidates.Len()).
			Msg("guess rated")
		if rating.Solved() {
			if err := r.model.Update(guess, rating); err != nil {
				return r.result(false), err
			}
			r.candidates = r.index.Of([]wordle.Word{guess})
			r.enter(PhaseDone)
			return r.result(true), nil
		}

		r.enter(PhaseUpdate)
		if err := r.model.Update(guess, rating); err != nil {
			return r.result(false), err
		}
		r.candidates = r.index.Filter(r.candidates, r.model)
		if r.state.Turn() >= r.maxGuesses {
			r.enter(PhaseDone)
			return r.result(false), nil
		}
	}
}

func (r *Runner) enter(phase Phase) {
	r.phase = phase
	if r.observer != nil {
		r.observer(phase)
	}
	r.logger.Trace().Stringer("phase", phase).Int("turn", r.state.Turn()).Msg("phase")
}

func (r *Runner) result(success bool) Result {
	guesses, ratings := r.History()
	return Result{
		Success:    success,
		Guesses:    guesses,
		Ratings:    ratings,
		GuessCount: len(guesses),
	}
}
