package worker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Draif/doc2vec/internal/corpus"
	"github.com/Draif/doc2vec/internal/vocabulary"
)

func buildVocab(t *testing.T, words ...string) *vocabulary.Vocabulary {
	t.Helper()
	v := vocabulary.New()
	for _, w := range words {
		v.Add(w, corpus.Normalize)
	}
	return v
}

func TestBuildSentencesSampleZeroKeepsEveryToken(t *testing.T) {
	vocab := buildVocab(t, "the", "cat", "the", "sat", "the")
	doc, err := corpus.NewDocument("d0 the cat the sat the", 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	sentence, noSample := buildSentences(doc, vocab, 0, rng)
	assert.Len(t, sentence, 5)
	assert.Len(t, noSample, 5)
}

func TestBuildSentencesDropsOutOfVocabularyTokens(t *testing.T) {
	vocab := buildVocab(t, "cat")
	doc, err := corpus.NewDocument("d0 cat dog", 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	sentence, noSample := buildSentences(doc, vocab, 0, rng)
	assert.Len(t, sentence, 1)
	assert.Len(t, noSample, 1)
	assert.Equal(t, "cat", sentence[0].Surface)
}

func TestBuildSentencesEmptyDocumentProducesNoTokens(t *testing.T) {
	vocab := buildVocab(t, "cat")
	doc, err := corpus.NewDocument("d0 ", 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	sentence, noSample := buildSentences(doc, vocab, 0.5, rng)
	assert.Empty(t, sentence)
	assert.Empty(t, noSample)
}

func TestKeepAlwaysKeepsWhenSampleDisabled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.True(t, keep(1, 1000, 0, rng))
	}
}

func TestKeepFavorsRareWords(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var rareKept, commonKept int
	trials := 2000
	for i := 0; i < trials; i++ {
		if keep(1, 10000, 1e-3, rng) {
			rareKept++
		}
	}
	for i := 0; i < trials; i++ {
		if keep(5000, 10000, 1e-3, rng) {
			commonKept++
		}
	}
	assert.Greater(t, rareKept, commonKept)
}

func TestBuildSentencesIsDeterministicGivenSeed(t *testing.T) {
	vocab := buildVocab(t, "word", "word", "word")
	doc, err := corpus.NewDocument("d0 word word word", 0)
	require.NoError(t, err)

	s1, _ := buildSentences(doc, vocab, 0.5, rand.New(rand.NewSource(99)))
	s2, _ := buildSentences(doc, vocab, 0.5, rand.New(rand.NewSource(99)))
	assert.Equal(t, len(s1), len(s2))
}
