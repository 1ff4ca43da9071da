package wordle

import (
	"bytes"
	"fmt"
)

// blank marks a secret letter that was already used by a correct or present guess letter
const blank = ' '

// Rate returns the rating for the guess given the secret.
//
// Pass 1 marks exact matches correct and removes them from a copy of the secret.
// Pass 2 marks the remaining guess letters present if the copy still has the
// letter, removing one occurrence each time, otherwise absent. Each letter of the
// secret is used at most once, so a guess with two S against a secret with one S
// gets one colored S.
func Rate(secret, guess Word) Rating {
	if len(secret) != len(guess) {
		panic(fmt.Sprintf("rate: secret %q and guess %q lengths differ", secret, guess))
	}
	rating := make(Rating, len(guess))
	remaining := []byte(secret)
	for i := 0; i < len(guess); i++ {
		if guess[i] == secret[i] {
			rating[i] = Correct
			remaining[i] = blank
		}
	}
	for i := 0; i < len(guess); i++ {
		if rating[i] == Correct {
			continue
		}
		if j := bytes.IndexByte(remaining, guess[i]); j >= 0 {
			rating[i] = Present
			remaining[j] = blank
		}
	}
	return rating
}

// Secret rates guesses against a hidden word
type Secret Word

func (s Secret) Rate(guess Word) (Rating, error) {
	if len(guess) != len(s) {
		return nil, fmt.Errorf("%w: guess %q has %d letters, secret has %d", ErrInvalidWord, guess, len(guess), len(s))
	}
	return Rate(Word(s), guess), nil
}
