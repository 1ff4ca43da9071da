// Package strategy holds the policies a bot uses to pick its next guess.
package strategy

import (
	"math/rand/v2"
	"slices"
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/wordle"
)

const (
	KindRandomFull    = "random-full"
	KindRandomPartial = "random-partial"
	KindEliminator    = "eliminator"
	KindClique        = "clique"
	KindPartition     = "partition"
)

var aliases = map[string]string{
	"frng":     KindRandomFull,
	"prng":     KindRandomPartial,
	"elim":     KindEliminator,
	"minimize": KindPartition,
}

// Strategy picks the next guess from the remaining candidates.
// Candidates are never empty when SelectGuess is called.
type Strategy interface {
	Name() string
	SelectGuess(c *candidate.Set, s *State) (wordle.Word, error)
}

// Precalculator is implemented by strategies that prepare per turn data before selecting
type Precalculator interface {
	Precalculate(c *candidate.Set, s *State)
}

// Resetter is implemented by strategies that keep per game state
type Resetter interface {
	Reset()
}

// State is what a strategy may know about the game besides the candidates
type State struct {
	Dictionary *wordle.Dictionary
	MaxGuesses int
	Guesses    []wordle.Word
	Ratings    []wordle.Rating
	guessed    mapset.Set
}

func NewState(dict *wordle.Dictionary, maxGuesses int) *State {
	return &State{
		Dictionary: dict,
		MaxGuesses: maxGuesses,
		guessed:    mapset.NewThreadUnsafeSet(),
	}
}

func (s *State) Length() int {
	return s.Dictionary.Length()
}

// Turn is the number of guesses made so far
func (s *State) Turn() int {
	return len(s.Guesses)
}

func (s *State) Record(guess wordle.Word, rating wordle.Rating) {
	s.Guesses = append(s.Guesses, guess)
	s.Ratings = append(s.Ratings, rating)
	s.guessed.Add(guess)
}

func (s *State) Guessed(word wordle.Word) bool {
	return s.guessed.Contains(word)
}

func (s *State) Reset() {
	s.Guesses = nil
	s.Ratings = nil
	s.guessed.Clear()
}

type options struct {
	rng     *rand.Rand
	opening []wordle.Word
}

type Option func(*options)

// WithSeed makes the random choices of a strategy repeatable
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithOpening replaces the built in opening sequence of the clique strategy
func WithOpening(words ...wordle.Word) Option {
	return func(o *options) {
		o.opening = slices.Clone(words)
	}
}

// Kinds lists the strategy names accepted by New
func Kinds() []string {
	return []string{KindRandomFull, KindRandomPartial, KindEliminator, KindClique, KindPartition}
}

// Canonical resolves an alias to its strategy name
func Canonical(kind string) string {
	if canonical, ok := aliases[kind]; ok {
		return canonical
	}
	return kind
}

// New returns the strategy named kind for words of length letters
func New(kind string, length int, opts ...Option) (Strategy, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	switch Canonical(kind) {
	case KindRandomFull:
		return &RandomFull{rng: o.rng}, nil
	case KindRandomPartial:
		return &RandomPartial{rng: o.rng}, nil
	case KindEliminator:
		return &Eliminator{}, nil
	case KindClique:
		return NewClique(length, o.opening, o.rng)
	case KindPartition:
		return &Partition{}, nil
	}
	kinds := Kinds()
	sort.Strings(kinds)
	return nil, wordle.Configurationf("unknown strategy %q, want one of %v", kind, kinds)
}
