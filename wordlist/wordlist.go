// Package wordlist loads the words-N.txt lists a game is played with.
//
// A list holds one word per line. Lines are trimmed and upper cased, blank
// lines and lines starting with # are skipped, and repeated words keep their
// first position. Every other line must be a word of exactly N letters A-Z.
// Built in lists for every supported length are embedded in the binary.
package wordlist

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/powellquiring/versebot/wordle"
)

//go:embed data/words-*.txt
var embedded embed.FS

// FileName is the name of the list for words of the given length
func FileName(length int) string {
	return fmt.Sprintf("words-%d.txt", length)
}

// Lengths returns the supported word lengths in increasing order
func Lengths() []int {
	ret := make([]int, 0, wordle.MaxLength-wordle.MinLength+1)
	for length := wordle.MinLength; length <= wordle.MaxLength; length++ {
		ret = append(ret, length)
	}
	return ret
}

func checkLength(length int) error {
	if length < wordle.MinLength || length > wordle.MaxLength {
		return wordle.Configurationf("word length %d not supported, want %d..%d", length, wordle.MinLength, wordle.MaxLength)
	}
	return nil
}

// Load reads words-<length>.txt from dir
func Load(dir string, length int) ([]wordle.Word, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, FileName(length))
	f, err := os.Open(path)
	if err != nil {
		return nil, wordle.Configurationf("open word list: %v", err)
	}
	defer f.Close()
	return Parse(f, path, length)
}

// Embedded returns the built in list for length
func Embedded(length int) ([]wordle.Word, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	f, err := embedded.Open("data/" + FileName(length))
	if err != nil {
		return nil, wordle.Configurationf("no embedded word list for length %d", length)
	}
	defer f.Close()
	return Parse(f, FileName(length), length)
}

func MustEmbedded(length int) []wordle.Word {
	ret, err := Embedded(length)
	if err != nil {
		panic(err)
	}
	return ret
}

// LoadOrEmbedded reads from dir when it is set, otherwise the built in list
func LoadOrEmbedded(dir string, length int) ([]wordle.Word, error) {
	if dir == "" {
		return Embedded(length)
	}
	return Load(dir, length)
}

// Parse reads a list, name is only used in error messages
func Parse(r io.Reader, name string, length int) ([]wordle.Word, error) {
	seen := mapset.NewThreadUnsafeSet()
	var ret []wordle.Word
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, err := wordle.ParseWord(text)
		if err != nil {
			return nil, wordle.Configurationf("%s:%d: %v", name, line, err)
		}
		if word.Len() != length {
			return nil, wordle.Configurationf("%s:%d: %q has %d letters, want %d", name, line, text, word.Len(), length)
		}
		if seen.Add(word) {
			ret = append(ret, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, wordle.Configurationf("read %s: %v", name, err)
	}
	if len(ret) == 0 {
		return nil, wordle.Configurationf("%s: word list is empty", name)
	}
	return ret, nil
}
