// Package vocabulary builds the word→entry table used by the training
// core, including Huffman coding for the hierarchical-softmax path.
package vocabulary

import (
	"fmt"
)

// Word is one vocabulary entry. Code and Path are populated by
// BuildHuffman; until then both are nil.
type Word struct {
	Surface   string
	Index     uint32
	Frequency uint32
	Code      []uint8  // 0/1 edge labels, root-to-leaf order
	Path      []uint32 // internal-node ids visited, root-to-leaf order; len(Path) == len(Code)+1
}

// Vocabulary maps surface forms and indices to Word entries.
type Vocabulary struct {
	bySurface      map[string]*Word
	byIndex        []*Word
	indexCounter   uint32
	trainWordCount uint64
}

// New returns an empty vocabulary ready for Add calls.
func New() *Vocabulary {
	return &Vocabulary{bySurface: make(map[string]*Word)}
}

// Add normalizes word, creates or increments its entry, and always
// increments the total training-token count.
func (v *Vocabulary) Add(word string, normalize func(string) string) {
	norm := normalize(word)
	if w, ok := v.bySurface[norm]; ok {
		w.Frequency++
	} else {
		w := &Word{Surface: norm, Index: v.indexCounter, Frequency: 1}
		v.bySurface[norm] = w
		v.byIndex = append(v.byIndex, w)
		v.indexCounter++
	}
	v.trainWordCount++
}

// FromEntries rebuilds a Vocabulary from fully-populated entries already
// in index order — the shape persistence.Load reads off disk, where
// frequency, code and path are already known and must not be recomputed.
func FromEntries(indexCounter uint32, trainWordsCount uint64, entries []*Word) *Vocabulary {
	v := &Vocabulary{
		bySurface:      make(map[string]*Word, len(entries)),
		byIndex:        entries,
		indexCounter:   indexCounter,
		trainWordCount: trainWordsCount,
	}
	for _, w := range entries {
		v.bySurface[w.Surface] = w
	}
	return v
}

// Size returns the number of distinct words.
func (v *Vocabulary) Size() int { return len(v.byIndex) }

// TrainWordsCount returns the total token count seen during ingestion,
// counting duplicates.
func (v *Vocabulary) TrainWordsCount() uint64 { return v.trainWordCount }

// Get looks a word up by its normalized surface form.
func (v *Vocabulary) Get(word string) (*Word, bool) {
	w, ok := v.bySurface[word]
	return w, ok
}

// GetByIndex looks a word up by its vocabulary index, in insertion order.
func (v *Vocabulary) GetByIndex(index uint32) (*Word, bool) {
	if int(index) >= len(v.byIndex) {
		return nil, false
	}
	return v.byIndex[index], true
}

// Words returns all entries in insertion (index) order. Callers must not
// mutate the returned slice's contents outside BuildHuffman.
func (v *Vocabulary) Words() []*Word { return v.byIndex }

// SumFrequencies adds up every entry's frequency; used by tests to check
// the §8 invariant Σ freq(w) == TrainWordsCount.
func (v *Vocabulary) SumFrequencies() uint64 {
	var sum uint64
	for _, w := range v.byIndex {
		sum += uint64(w.Frequency)
	}
	return sum
}

// String renders basic corpus statistics, for the ambient logger.
func (v *Vocabulary) String() string {
	return fmt.Sprintf("%d unique words, %d train words", v.Size(), v.trainWordCount)
}
