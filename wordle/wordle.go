package wordle

import (
	"fmt"
	"strings"
)

const (
	MinLength = 3
	MaxLength = 12
)

// Word is an uppercase A-Z word, the length is fixed per game
type Word string

// Color is the feedback for one letter of a guess
type Color int

// Rating has one Color for each letter of the guess
type Rating []Color

const (
	Absent Color = iota
	Present
	Correct
)

func ParseWord(s string) (Word, error) {
	word := strings.ToUpper(strings.TrimSpace(s))
	if len(word) < MinLength || len(word) > MaxLength {
		return "", fmt.Errorf("%w: %q has %d letters, want %d..%d", ErrInvalidWord, s, len(word), MinLength, MaxLength)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return "", fmt.Errorf("%w: %q is not A-Z", ErrInvalidWord, s)
		}
	}
	return Word(word), nil
}

// MustParseWord panics if s is not a valid word, used for constants and tests
func MustParseWord(s string) Word {
	word, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return word
}

func ParseWords(strings []string) ([]Word, error) {
	ret := make([]Word, 0, len(strings))
	for _, s := range strings {
		word, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, word)
	}
	return ret, nil
}

func MustParseWords(strings ...string) []Word {
	ret, err := ParseWords(strings)
	if err != nil {
		panic(err)
	}
	return ret
}

func (w Word) Len() int {
	return len(w)
}

func (c Color) Valid() bool {
	return c >= Absent && c <= Correct
}

// Letter is the r/y/g form of the color used when playing against the web game
func (c Color) Letter() byte {
	switch c {
	case Absent:
		return 'r'
	case Present:
		return 'y'
	case Correct:
		return 'g'
	}
	return '?'
}

func (c Color) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseRating accepts digits (0 absent, 1 present, 2 correct) or colors
// (r/b/x absent, y present, g correct), e.g. "11202" or "yygrg"
func ParseRating(colors string) (Rating, error) {
	ret := make(Rating, 0, len(colors))
	for _, color := range strings.ToLower(strings.TrimSpace(colors)) {
		switch color {
		case '0', 'r', 'b', 'x', '.':
			ret = append(ret, Absent)
		case '1', 'y':
			ret = append(ret, Present)
		case '2', 'g':
			ret = append(ret, Correct)
		default:
			return nil, &InvalidRatingError{Rating: colors, Reason: fmt.Sprintf("unknown color %q", color)}
		}
	}
	return ret, nil
}

// String is the digit form, "11202"
func (r Rating) String() string {
	var b strings.Builder
	for _, color := range r {
		if color.Valid() {
			b.WriteByte('0' + byte(color))
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Colors is the r/y/g form, "yygrg"
func (r Rating) Colors() string {
	var b strings.Builder
	for _, color := range r {
		b.WriteByte(color.Letter())
	}
	return b.String()
}

// Solved is true when every letter is correct
func (r Rating) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, color := range r {
		if color != Correct {
			return false
		}
	}
	return true
}

func (r Rating) Equal(other Rating) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate checks the rating can describe guess
func (r Rating) Validate(guess Word) error {
	if len(r) != len(guess) {
		return &InvalidRatingError{Guess: guess, Rating: r.String(), Reason: fmt.Sprintf("has %d colors, guess has %d letters", len(r), len(guess))}
	}
	for i, color := range r {
		if !color.Valid() {
			return &InvalidRatingError{Guess: guess, Rating: r.String(), Reason: fmt.Sprintf("value %d at position %d", int(color), i)}
		}
	}
	return nil
}
