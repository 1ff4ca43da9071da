package strategy

import (
	"context"

	"github.com/powellquiring/versebot/letterset"
	"github.com/powellquiring/versebot/wordle"
)

type openingEntry struct {
	word wordle.Word
	mask letterset.Set
}

// FindOpening searches words, depth first in list order, for size words that
// share no letter. Words with a repeated letter are skipped and only the first
// of a group of anagrams is tried. progress, when not nil, is called after
// each first word with the number of first words tried and the total.
func FindOpening(ctx context.Context, words []wordle.Word, size int, progress func(done, total int)) ([]wordle.Word, error) {
	if len(words) == 0 {
		return nil, wordle.Configurationf("word list is empty")
	}
	length := words[0].Len()
	if size < 1 || size*length > letterset.Letters {
		return nil, wordle.Configurationf("can not fit %d words of %d distinct letters in %d letters", size, length, letterset.Letters)
	}

	seen := make(map[letterset.Set]bool, len(words))
	entries := make([]openingEntry, 0, len(words))
	for _, word := range words {
		mask := letterset.OfString(string(word))
		if word.Len() != length || mask.Count() != length || seen[mask] {
			continue
		}
		seen[mask] = true
		entries = append(entries, openingEntry{word: word, mask: mask})
	}

	path := make([]int, 0, size)
	var search func(start int, used letterset.Set) bool
	search = func(start int, used letterset.Set) bool {
		if len(path) == size {
			return true
		}
		for i := start; i < len(entries); i++ {
			if len(entries)-i < size-len(path) {
				return false
			}
			if !entries[i].mask.Disjoint(used) {
				continue
			}
			path = append(path, i)
			if search(i+1, used.Union(entries[i].mask)) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	for i, first := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path = append(path[:0], i)
		found := search(i+1, first.mask)
		if progress != nil {
			progress(i+1, len(entries))
		}
		if found {
			ret := make([]wordle.Word, len(path))
			for j, index := range path {
				ret[j] = entries[index].word
			}
			return ret, nil
		}
	}
	return nil, wordle.Configurationf("no %d words of %d letters share no letter", size, length)
}
