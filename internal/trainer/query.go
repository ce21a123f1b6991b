package trainer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Draif/doc2vec/internal/corpus"
	"github.com/Draif/doc2vec/internal/query"
)

// WordMatch is one nearest-neighbor result resolved back to a surface
// form.
type WordMatch struct {
	Word       string
	Similarity float64
}

// DocMatch is the document analogue, resolved back to a tag.
type DocMatch struct {
	Tag        string
	Similarity float64
}

// FindSimilarWords returns the K words whose WNorm row is most similar
// to word's, excluding word itself.
func (m *Model) FindSimilarWords(word string, k int) ([]WordMatch, error) {
	w, ok := m.Vocab.Get(corpus.Normalize(word))
	if !ok {
		return nil, fmt.Errorf("trainer: unknown word %q", word)
	}
	results, err := query.SimilarToRow(m.Net.WNorm, w.Index, k)
	if err != nil {
		return nil, err
	}
	out := make([]WordMatch, len(results))
	for i, r := range results {
		entry, ok := m.Vocab.GetByIndex(r.Index)
		if !ok {
			return nil, fmt.Errorf("trainer: result index %d has no vocabulary entry", r.Index)
		}
		out[i] = WordMatch{Word: entry.Surface, Similarity: r.Similarity}
	}
	return out, nil
}

// FindSimilarDocs returns the K documents whose DNorm row is most
// similar to the document named by tag, excluding it itself.
func (m *Model) FindSimilarDocs(tag string, k int) ([]DocMatch, error) {
	doc, ok := m.Corpus.DocumentByTag(tag)
	if !ok {
		return nil, fmt.Errorf("trainer: unknown document tag %q", tag)
	}
	results, err := query.SimilarToRow(m.Net.DNorm, doc.Index, k)
	if err != nil {
		return nil, err
	}
	out := make([]DocMatch, len(results))
	for i, r := range results {
		other, err := m.Corpus.Document(r.Index)
		if err != nil {
			return nil, err
		}
		out[i] = DocMatch{Tag: other.Tag, Similarity: r.Similarity}
	}
	return out, nil
}

// WordVector returns a copy of word's WNorm row.
func (m *Model) WordVector(word string) (*mat.VecDense, error) {
	w, ok := m.Vocab.Get(corpus.Normalize(word))
	if !ok {
		return nil, fmt.Errorf("trainer: unknown word %q", word)
	}
	row, err := m.Net.WNorm.RowSafe(w.Index)
	if err != nil {
		return nil, err
	}
	v := mat.NewVecDense(row.Dim(), nil)
	row.Snapshot(v)
	return v, nil
}

// DocVector returns a copy of the DNorm row for the document named tag.
func (m *Model) DocVector(tag string) (*mat.VecDense, error) {
	doc, ok := m.Corpus.DocumentByTag(tag)
	if !ok {
		return nil, fmt.Errorf("trainer: unknown document tag %q", tag)
	}
	row, err := m.Net.DNorm.RowSafe(doc.Index)
	if err != nil {
		return nil, err
	}
	v := mat.NewVecDense(row.Dim(), nil)
	row.Snapshot(v)
	return v, nil
}
