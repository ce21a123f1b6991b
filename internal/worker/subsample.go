package worker

import (
	"math"
	"math/rand"

	"github.com/Draif/doc2vec/internal/corpus"
	"github.com/Draif/doc2vec/internal/vocabulary"
)

// buildSentences turns one document's raw token list into two parallel
// sequences: sentence (post-subsampling, the training context) and
// sentenceNoSample (every in-vocabulary token, used only by the
// Skip-Gram document-attachment pass). Out-of-vocabulary tokens are
// dropped from both.
func buildSentences(doc corpus.Document, vocab *vocabulary.Vocabulary, sample float64, rng *rand.Rand) (sentence, sentenceNoSample []*vocabulary.Word) {
	trainWords := float64(vocab.TrainWordsCount())
	for _, tok := range doc.Words {
		w, ok := vocab.Get(corpus.Normalize(tok))
		if !ok {
			continue
		}
		sentenceNoSample = append(sentenceNoSample, w)
		if keep(w.Frequency, trainWords, sample, rng) {
			sentence = append(sentence, w)
		}
	}
	return sentence, sentenceNoSample
}

// keep implements the word2vec subsampling formula: drop the token iff
// keepProbComplement < u. sample == 0 always keeps.
func keep(freq uint32, trainWords, sample float64, rng *rand.Rand) bool {
	if sample <= 0 {
		return true
	}
	f := float64(freq)
	t := sample * trainWords
	keepProbComplement := (math.Sqrt(f/t) + 1) * (t / f)
	u := rng.Float64()
	return !(keepProbComplement < u)
}
