// Package constraint keeps what the ratings seen so far say about the secret word.
//
// For each position the model holds the set of letters still admissible there,
// and for letters known to be in the word but not pinned it holds the minimum
// number of times the letter must occur. A word is consistent when each letter
// is admissible at its position and every forced letter occurs often enough.
package constraint

import (
	"fmt"
	"strings"

	"github.com/powellquiring/versebot/letterset"
	"github.com/powellquiring/versebot/wordle"
)

type Model struct {
	positions []letterset.Set
	locked    []bool
	forced    [letterset.Letters]int
}

func New(length int) *Model {
	ret := &Model{
		positions: make([]letterset.Set, length),
		locked:    make([]bool, length),
	}
	for i := range ret.positions {
		ret.positions[i] = letterset.All
	}
	return ret
}

func (m *Model) Length() int {
	return len(m.positions)
}

// Allowed is the set of letters admissible at position i
func (m *Model) Allowed(i int) letterset.Set {
	return m.positions[i]
}

// Locked reports whether position i is pinned to a single letter for the rest of the game
func (m *Model) Locked(i int) bool {
	return m.locked[i]
}

// Forced returns the minimum count required for a letter, 0 when not forced
func (m *Model) Forced(letter byte) int {
	return m.forced[letter-'A']
}

// ForcedLetters yields each forced letter with its minimum count, alphabetically
func (m *Model) ForcedLetters(yield func(letter byte, count int) bool) {
	for i, count := range m.forced {
		if count == 0 {
			continue
		}
		if !yield('A'+byte(i), count) {
			return
		}
	}
}

func (m *Model) Clone() *Model {
	ret := &Model{
		positions: make([]letterset.Set, len(m.positions)),
		locked:    make([]bool, len(m.locked)),
		forced:    m.forced,
	}
	copy(ret.positions, m.positions)
	copy(ret.locked, m.locked)
	return ret
}

// Update folds one guess and its rating into the model.
//
// Correct letters are handled first, then present, then absent. The order
// matters for guesses with repeated letters: an absent letter that is correct
// or present elsewhere in the same guess only rules out its own position.
func (m *Model) Update(guess wordle.Word, rating wordle.Rating) error {
	if err := rating.Validate(guess); err != nil {
		return err
	}
	if len(guess) != len(m.positions) {
		return &wordle.InvalidRatingError{Guess: guess, Rating: rating.String(), Reason: fmt.Sprintf("guess has %d letters, game has %d", len(guess), len(m.positions))}
	}

	// colored counts the correct and present occurrences of each letter in this guess
	var colored [letterset.Letters]int
	for i, color := range rating {
		if color != wordle.Absent {
			colored[guess[i]-'A']++
		}
	}

	for i, color := range rating {
		if color == wordle.Correct {
			m.pin(i, guess[i])
		}
	}

	for i, color := range rating {
		if color != wordle.Present {
			continue
		}
		letter := guess[i]
		m.positions[i] = m.positions[i].Remove(letter)
		if required := colored[letter-'A']; required > m.forced[letter-'A'] {
			m.forced[letter-'A'] = required
		}
		m.deduceUniqueSlot(letter)
	}

	for i, color := range rating {
		if color != wordle.Absent {
			continue
		}
		letter := guess[i]
		if colored[letter-'A'] > 0 || m.forced[letter-'A'] > 0 {
			m.positions[i] = m.positions[i].Remove(letter)
			continue
		}
		for j := range m.positions {
			if !m.locked[j] {
				m.positions[j] = m.positions[j].Remove(letter)
			}
		}
	}
	return nil
}

func (m *Model) pin(i int, letter byte) {
	m.positions[i] = letterset.Of(letter)
	m.locked[i] = true
}

// deduceUniqueSlot pins the only open position left for a forced letter.
// The letter must occur more times than the locked positions already account
// for, otherwise the present rating may have come from a locked copy.
func (m *Model) deduceUniqueSlot(letter byte) {
	pinned := 0
	slot := -1
	open := 0
	for i, allowed := range m.positions {
		if m.locked[i] {
			if only, ok := allowed.Only(); ok && only == letter {
				pinned++
			}
			continue
		}
		if allowed.Has(letter) {
			open++
			slot = i
		}
	}
	if open == 1 && m.forced[letter-'A'] > pinned {
		m.pin(slot, letter)
	}
}

// Consistent reports whether word could still be the secret
func (m *Model) Consistent(word wordle.Word) bool {
	if len(word) != len(m.positions) {
		return false
	}
	var counts [letterset.Letters]int
	for i := 0; i < len(word); i++ {
		if !m.positions[i].Has(word[i]) {
			return false
		}
		counts[word[i]-'A']++
	}
	for i, required := range m.forced {
		if counts[i] < required {
			return false
		}
	}
	return true
}

func (m *Model) String() string {
	var b strings.Builder
	for _, allowed := range m.positions {
		b.WriteString(allowed.String())
	}
	for letter, count := range m.ForcedLetters {
		fmt.Fprintf(&b, " %c>=%d", letter, count)
	}
	return b.String()
}
