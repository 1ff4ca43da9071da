package wordle

// Index is a position in the dictionary
type Index uint32

// Dictionary is the ordered, read only list of words a game is played with.
// Candidate sets are views over the dictionary indices.
type Dictionary struct {
	words        []Word
	length       int
	stringToWord map[Word]Index
}

// NewDictionary requires a non empty list where every word has the same length
func NewDictionary(words []Word) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, Configurationf("word list is empty")
	}
	length := len(words[0])
	if length < MinLength || length > MaxLength {
		return nil, Configurationf("word length %d not supported, want %d..%d", length, MinLength, MaxLength)
	}
	ret := &Dictionary{
		words:        make([]Word, len(words)),
		length:       length,
		stringToWord: make(map[Word]Index, len(words)),
	}
	for i, word := range words {
		if len(word) != length {
			return nil, Configurationf("word list is not uniform: %q has %d letters, %q has %d", word, len(word), words[0], length)
		}
		ret.words[i] = word
		if _, ok := ret.stringToWord[word]; !ok {
			ret.stringToWord[word] = Index(i)
		}
	}
	return ret, nil
}

func NewDictionaryFromStrings(strings []string) (*Dictionary, error) {
	words, err := ParseWords(strings)
	if err != nil {
		return nil, Configurationf("%v", err)
	}
	return NewDictionary(words)
}

// Len is the number of words
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Length is the number of letters in each word
func (d *Dictionary) Length() int {
	return d.length
}

func (d *Dictionary) Word(index Index) Word {
	return d.words[index]
}

func (d *Dictionary) Lookup(word Word) (Index, bool) {
	ret, ok := d.stringToWord[word]
	return ret, ok
}

func (d *Dictionary) Contains(word Word) bool {
	_, ok := d.stringToWord[word]
	return ok
}

// Words returns a copy of the word list
func (d *Dictionary) Words() []Word {
	ret := make([]Word, len(d.words))
	copy(ret, d.words)
	return ret
}

func (d *Dictionary) Range(yield func(index Index, word Word) bool) {
	for i, word := range d.words {
		if !yield(Index(i), word) {
			return
		}
	}
}
