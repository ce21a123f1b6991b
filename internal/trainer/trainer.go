// Package trainer builds the sampling tables and neural model from an
// ingested corpus, spawns one worker per shard, and joins them.
package trainer

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Draif/doc2vec/internal/alpha"
	"github.com/Draif/doc2vec/internal/config"
	"github.com/Draif/doc2vec/internal/corpus"
	"github.com/Draif/doc2vec/internal/embedding"
	"github.com/Draif/doc2vec/internal/logging"
	"github.com/Draif/doc2vec/internal/persistence"
	"github.com/Draif/doc2vec/internal/sampling"
	"github.com/Draif/doc2vec/internal/vocabulary"
	"github.com/Draif/doc2vec/internal/worker"
)

// Model is the trainable, saveable, queryable artifact: a trained (or
// loaded) neural model plus the corpus and vocabulary it was built from.
type Model struct {
	Spec    config.TrainSpec
	Corpus  *corpus.Corpus
	Vocab   *vocabulary.Vocabulary
	Net     *embedding.Model
	Sigmoid *sampling.SigmoidTable

	negTable   *sampling.NegativeTable
	alphaCtrl  *alpha.Controller
	sharedRand *worker.SharedRand
	log        *logging.Logger
}

// New ingests a corpus from r under spec, builds the vocabulary and its
// Huffman coding, and allocates a fresh neural model ready for Train.
func New(spec config.TrainSpec, r io.Reader, log *logging.Logger) (*Model, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop()
	}
	if !spec.HierarchicalSoftMax && spec.NegativeSamples == 0 {
		log.Warn("hs=false and ns_num=0: training will perform no weight updates")
	}

	corp, err := corpus.Load(r)
	if err != nil {
		return nil, fmt.Errorf("trainer: load corpus: %w", err)
	}
	log.Info("ingested %d documents", corp.Size())

	vocab := vocabulary.New()
	for _, doc := range corp.Documents() {
		for _, word := range doc.Words {
			vocab.Add(word, corpus.Normalize)
		}
	}
	vocab.BuildHuffman()
	log.Info("vocabulary: %s", vocab)

	sigmoid := sampling.NewSigmoidTable()
	negTable := sampling.NewNegativeTable(frequencies(vocab))

	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))
	net := embedding.NewModel(vocab.Size(), corp.Size(), spec.Dimension, rng)

	reporter := logReporter{log: log}
	alphaCtrl := alpha.New(spec.Alpha, vocab.TrainWordsCount(), spec.Iterations, reporter)

	return &Model{
		Spec:       spec,
		Corpus:     corp,
		Vocab:      vocab,
		Net:        net,
		Sigmoid:    sigmoid,
		negTable:   negTable,
		alphaCtrl:  alphaCtrl,
		sharedRand: worker.NewSharedRand(seed + 1),
		log:        log,
	}, nil
}

func frequencies(vocab *vocabulary.Vocabulary) []uint32 {
	words := vocab.Words()
	freqs := make([]uint32, len(words))
	for i, w := range words {
		freqs[i] = w.Frequency
	}
	return freqs
}

// Train splits the corpus into Spec.Threads shards and runs one worker
// per shard to completion. Any worker's fatal fault aborts the whole run;
// on success it normalizes the model in place.
func (m *Model) Train() error {
	shards, err := m.Corpus.Split(m.Spec.Threads)
	if err != nil {
		return fmt.Errorf("trainer: split corpus: %w", err)
	}
	m.log.Info("training: %d shard(s), %d iteration(s), dim=%d", len(shards), m.Spec.Iterations, m.Spec.Dimension)

	cfg := worker.Config{
		CBOW:                m.Spec.CBOW,
		HierarchicalSoftMax: m.Spec.HierarchicalSoftMax,
		NegativeSamples:     m.Spec.NegativeSamples,
		Window:              m.Spec.Window,
		Sample:              m.Spec.Sample,
		Iterations:          m.Spec.Iterations,
	}

	var g errgroup.Group
	base := time.Now().UnixNano()
	for i, shard := range shards {
		w := worker.New(i, shard, m.Vocab, m.Net, m.Sigmoid, m.negTable, m.sharedRand, m.alphaCtrl, cfg, base+int64(i))
		g.Go(w.Run)
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("trainer: training aborted: %w", err)
	}

	m.Net.Normalize()
	m.log.Info("training complete: %d words processed", m.alphaCtrl.WordsProcessed())
	return nil
}

// Save writes the model in the package's tagged-text format.
func (m *Model) Save(w io.Writer) error {
	return persistence.Save(w, m.Spec, m.Net, m.Corpus, m.Vocab)
}

// Load reads a model previously written by Save. The sampling tables and
// alpha controller are rebuilt from the loaded vocabulary so the model
// remains trainable; callers that only query it never touch them.
func Load(r io.Reader, log *logging.Logger) (*Model, error) {
	if log == nil {
		log = logging.Nop()
	}
	spec, net, corp, vocab, err := persistence.Load(r)
	if err != nil {
		return nil, fmt.Errorf("trainer: load model: %w", err)
	}

	sigmoid := sampling.NewSigmoidTable()
	negTable := sampling.NewNegativeTable(frequencies(vocab))
	reporter := logReporter{log: log}
	alphaCtrl := alpha.New(spec.Alpha, vocab.TrainWordsCount(), spec.Iterations, reporter)
	seed := time.Now().UnixNano()

	return &Model{
		Spec:       spec,
		Corpus:     corp,
		Vocab:      vocab,
		Net:        net,
		Sigmoid:    sigmoid,
		negTable:   negTable,
		alphaCtrl:  alphaCtrl,
		sharedRand: worker.NewSharedRand(seed),
		log:        log,
	}, nil
}
