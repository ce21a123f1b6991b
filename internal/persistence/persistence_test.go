package persistence

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Draif/doc2vec/internal/config"
	"github.com/Draif/doc2vec/internal/corpus"
	"github.com/Draif/doc2vec/internal/embedding"
	"github.com/Draif/doc2vec/internal/vocabulary"
)

func buildFixture(t *testing.T) (config.TrainSpec, *embedding.Model, *corpus.Corpus, *vocabulary.Vocabulary) {
	t.Helper()
	spec := config.Default()
	spec.TrainFilename = "fixture.txt"
	spec.Dimension = 4

	corp, err := corpus.Load(strings.NewReader("d0 the cat sat\nd1 the dog ran\n"))
	require.NoError(t, err)

	vocab := vocabulary.New()
	for _, doc := range corp.Documents() {
		for _, w := range doc.Words {
			vocab.Add(w, corpus.Normalize)
		}
	}
	vocab.BuildHuffman()

	rng := rand.New(rand.NewSource(7))
	net := embedding.NewModel(vocab.Size(), corp.Size(), spec.Dimension, rng)
	net.Normalize()

	return spec, net, corp, vocab
}

func TestSaveLoadRoundTrip(t *testing.T) {
	spec, net, corp, vocab := buildFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, spec, net, corp, vocab))

	gotSpec, gotNet, gotCorp, gotVocab, err := Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, spec, gotSpec)
	assert.Equal(t, corp.Size(), gotCorp.Size())
	for i := 0; i < corp.Size(); i++ {
		want, _ := corp.Document(uint32(i))
		got, _ := gotCorp.Document(uint32(i))
		assert.Equal(t, want.Raw, got.Raw)
		assert.Equal(t, want.Tag, got.Tag)
		assert.Equal(t, want.Words, got.Words)
	}

	assert.Equal(t, vocab.Size(), gotVocab.Size())
	assert.Equal(t, vocab.TrainWordsCount(), gotVocab.TrainWordsCount())
	for _, w := range vocab.Words() {
		got, ok := gotVocab.GetByIndex(w.Index)
		require.True(t, ok)
		assert.Equal(t, w.Surface, got.Surface)
		assert.Equal(t, w.Frequency, got.Frequency)
		assert.Equal(t, w.Code, got.Code)
		assert.Equal(t, w.Path, got.Path)
	}

	assert.Equal(t, net.Dim, gotNet.Dim)
	assert.Equal(t, net.WIn.Values(), gotNet.WIn.Values())
	assert.Equal(t, net.DIn.Values(), gotNet.DIn.Values())
	assert.Equal(t, net.WNorm.Values(), gotNet.WNorm.Values())
	assert.Equal(t, net.DNorm.Values(), gotNet.DNorm.Values())
}
