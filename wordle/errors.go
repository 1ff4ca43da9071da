package wordle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is returned when a game, strategy or word list can not be set up.
	ErrConfiguration = errors.New("configuration error")
	// ErrEmptyCandidateSet means the feedback eliminated every word, including the secret.
	ErrEmptyCandidateSet = errors.New("empty candidate set")
	// ErrInvalidRating is returned for rating values outside 0..2 or a length mismatch with the guess.
	ErrInvalidRating = errors.New("invalid rating")
	// ErrInvalidWord is returned for words that are not A-Z or have an unsupported length.
	ErrInvalidWord = errors.New("invalid word")
)

type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func Configurationf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// EmptyCandidateSetError carries the history that emptied the candidate set.
type EmptyCandidateSetError struct {
	Guesses []Word
	Ratings []Rating
}

func (e *EmptyCandidateSetError) Error() string {
	var b strings.Builder
	b.WriteString("empty candidate set after")
	if len(e.Guesses) == 0 {
		b.WriteString(" no guesses")
	}
	for i, guess := range e.Guesses {
		b.WriteString(" ")
		b.WriteString(string(guess))
		if i < len(e.Ratings) {
			b.WriteString("/")
			b.WriteString(e.Ratings[i].String())
		}
	}
	return b.String()
}

func (e *EmptyCandidateSetError) Unwrap() error {
	return ErrEmptyCandidateSet
}

type InvalidRatingError struct {
	Guess  Word
	Rating string
	Reason string
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating %q for guess %q: %s", e.Rating, e.Guess, e.Reason)
}

func (e *InvalidRatingError) Unwrap() error {
	return ErrInvalidRating
}
