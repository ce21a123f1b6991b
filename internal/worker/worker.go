// Package worker runs one corpus shard's training epochs: it builds
// per-document contexts, then applies the CBOW or Skip-Gram update with
// Hierarchical Softmax and/or Negative Sampling, against the shared
// embedding matrices under a per-row locking discipline.
package worker

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/Draif/doc2vec/internal/alpha"
	"github.com/Draif/doc2vec/internal/corpus"
	"github.com/Draif/doc2vec/internal/embedding"
	"github.com/Draif/doc2vec/internal/sampling"
	"github.com/Draif/doc2vec/internal/vocabulary"
)

// Config holds the per-run training parameters a Worker needs; it is
// shared read-only by every worker in a run.
type Config struct {
	CBOW                bool
	HierarchicalSoftMax bool
	NegativeSamples     int
	Window              int
	Sample              float64
	Iterations          int
}

// Worker trains one shard for Config.Iterations epochs against the
// shared Model, Vocabulary and sampling tables. It owns a local RNG for
// subsampling draws and reports its word throughput to the shared Alpha
// controller; window jitter and negative-sample draws go through the
// shared process-global RNG instead.
type Worker struct {
	id      int
	shard   *corpus.Corpus
	vocab   *vocabulary.Vocabulary
	model   *embedding.Model
	sigmoid *sampling.SigmoidTable
	negTab  *sampling.NegativeTable
	shared  *SharedRand
	alphaC  *alpha.Controller
	cfg     Config

	localRand *rand.Rand
}

// New builds a Worker for one shard. seed seeds the worker's private
// subsampling RNG; it need not be reproducible across runs.
func New(id int, shard *corpus.Corpus, vocab *vocabulary.Vocabulary, model *embedding.Model, sigmoid *sampling.SigmoidTable, negTab *sampling.NegativeTable, shared *SharedRand, alphaC *alpha.Controller, cfg Config, seed int64) *Worker {
	return &Worker{
		id:        id,
		shard:     shard,
		vocab:     vocab,
		model:     model,
		sigmoid:   sigmoid,
		negTab:    negTab,
		shared:    shared,
		alphaC:    alphaC,
		cfg:       cfg,
		localRand: rand.New(rand.NewSource(seed)),
	}
}

// Run processes the shard's documents for Config.Iterations epochs. It
// returns an error only on an unrecoverable fault, which must abort the
// whole training run via the caller's errgroup.
func (w *Worker) Run() error {
	for epoch := 0; epoch < w.cfg.Iterations; epoch++ {
		for _, doc := range w.shard.Documents() {
			if err := w.trainDocument(doc); err != nil {
				return fmt.Errorf("worker %d: document %q: %w", w.id, doc.Tag, err)
			}
		}
	}
	return nil
}

func (w *Worker) trainDocument(doc corpus.Document) error {
	if int(doc.Index) >= w.model.DIn.Rows() {
		return fmt.Errorf("document index %d out of range for document matrix of size %d", doc.Index, w.model.DIn.Rows())
	}
	sentence, sentenceNoSample := buildSentences(doc, w.vocab, w.cfg.Sample, w.localRand)
	if len(sentence) == 0 {
		return nil
	}

	var err error
	if w.cfg.CBOW {
		err = w.trainCBOW(doc, sentence)
	} else {
		err = w.trainSG(doc, sentence, sentenceNoSample)
	}
	if err != nil {
		return err
	}

	w.alphaC.AddWordsProcessed(len(sentence))
	return nil
}

// window returns the jittered context bounds [lo, hi) around center t in
// a sentence of length n, excluding t itself by construction of the
// caller's loop.
func (w *Worker) window(t, n int) (lo, hi int) {
	b := 0
	if w.cfg.Window > 0 {
		b = w.shared.Intn(w.cfg.Window)
	}
	lo = t - w.cfg.Window + b
	if lo < 0 {
		lo = 0
	}
	hi = t + w.cfg.Window - b + 1
	if hi > n {
		hi = n
	}
	return lo, hi
}

// trainCBOW averages the document vector with its surrounding context
// window into a single hidden vector, backpropagates through the HS/NS
// output layers, and adds the resulting error back onto every input row
// that contributed. D_in[doc.Index] is locked for the whole per-document
// pass; context rows and HS/NS output rows are each locked one at a
// time.
func (w *Worker) trainCBOW(doc corpus.Document, sentence []*vocabulary.Word) error {
	docRow := w.model.DIn.Row(doc.Index)
	docRow.Lock()
	defer docRow.Unlock()

	dim := w.model.Dim

	for t, center := range sentence {
		lo, hi := w.window(t, len(sentence))

		h := mat.NewVecDense(dim, nil)
		count := 0
		for i := lo; i < hi; i++ {
			if i == t {
				continue
			}
			row := w.model.WIn.Row(sentence[i].Index)
			row.Lock()
			h.AddVec(h, row.Vector())
			row.Unlock()
			count++
		}
		h.AddVec(h, docRow.Vector())
		count++
		h.ScaleVec(1/float64(count), h)

		e := mat.NewVecDense(dim, nil)
		alphaCur := w.alphaC.Current()
		if w.cfg.HierarchicalSoftMax {
			w.hsPass(center, h, e, alphaCur)
		}
		if w.cfg.NegativeSamples > 0 {
			if err := w.nsPass(center.Index, h, e, alphaCur, true); err != nil {
				return err
			}
		}

		for i := lo; i < hi; i++ {
			if i == t {
				continue
			}
			row := w.model.WIn.Row(sentence[i].Index)
			row.Lock()
			row.Vector().AddVec(row.Vector(), e)
			row.Unlock()
		}
		docRow.Vector().AddVec(docRow.Vector(), e)
	}
	return nil
}

// trainSG trains the center/context pairs, then (separately) the
// document/token pairs, each using the input-side row itself as the
// hidden vector, updated in place with no averaging.
func (w *Worker) trainSG(doc corpus.Document, sentence, sentenceNoSample []*vocabulary.Word) error {
	dim := w.model.Dim

	for t, center := range sentence {
		lo, hi := w.window(t, len(sentence))
		for i := lo; i < hi; i++ {
			if i == t {
				continue
			}
			ctxWord := sentence[i]
			row := w.model.WIn.Row(ctxWord.Index)
			row.Lock()
			h := row.Vector()
			e := mat.NewVecDense(dim, nil)
			alphaCur := w.alphaC.Current()
			if w.cfg.HierarchicalSoftMax {
				w.hsPass(center, h, e, alphaCur)
			}
			if w.cfg.NegativeSamples > 0 {
				if err := w.nsPass(center.Index, h, e, alphaCur, false); err != nil {
					row.Unlock()
					return err
				}
			}
			h.AddVec(h, e)
			row.Unlock()
		}
	}

	docRow := w.model.DIn.Row(doc.Index)
	docRow.Lock()
	h := docRow.Vector()
	for _, tok := range sentenceNoSample {
		e := mat.NewVecDense(dim, nil)
		alphaCur := w.alphaC.Current()
		if w.cfg.HierarchicalSoftMax {
			w.hsPass(tok, h, e, alphaCur)
		}
		if w.cfg.NegativeSamples > 0 {
			if err := w.nsPass(tok.Index, h, e, alphaCur, false); err != nil {
				docRow.Unlock()
				return err
			}
		}
		h.AddVec(h, e)
	}
	docRow.Unlock()
	return nil
}

// hsPass walks target's Huffman path, accumulating into e and updating
// W_hs rows in place. Shared verbatim by CBOW and Skip-Gram.
func (w *Worker) hsPass(target *vocabulary.Word, h, e *mat.VecDense, alphaCur float64) {
	for k := 0; k < len(target.Code); k++ {
		node := target.Path[k]
		row := w.model.WHS.Row(node)
		row.Lock()
		v := row.Vector()
		f := mat.Dot(h, v)
		if math.IsNaN(f) || math.Abs(f) >= sampling.MaxExp {
			row.Unlock()
			continue
		}
		sig := w.sigmoid.Sigmoid(f)
		code := float64(target.Code[k])
		g := (1 - code - sig) * alphaCur
		e.AddScaledVec(e, g, v)
		v.AddScaledVec(v, g, h)
		row.Unlock()
	}
}

// nsPass runs the d=0..NegativeSamples negative-sampling iterations
// against targetIndex as the positive example. cbowNaNQuirk selects which
// branch NaN scores fall into: CBOW treats NaN as ">MAX_EXP" explicitly;
// Skip-Gram does not special-case it and instead falls through to the
// sigmoid-table branch — this asymmetry is intentional and preserved
// between the two callers.
func (w *Worker) nsPass(targetIndex uint32, h, e *mat.VecDense, alphaCur float64, cbowNaNQuirk bool) error {
	for d := 0; d <= w.cfg.NegativeSamples; d++ {
		var idx uint32
		var label float64
		if d == 0 {
			idx = targetIndex
			label = 1
		} else {
			idx = w.negTab.Sample(w.shared)
			if idx == targetIndex {
				continue
			}
			label = 0
		}
		if int(idx) >= w.model.WNeg.Rows() {
			return fmt.Errorf("negative-sample index %d out of range for output matrix of size %d", idx, w.model.WNeg.Rows())
		}

		row := w.model.WNeg.Row(idx)
		row.Lock()
		v := row.Vector()
		f := mat.Dot(h, v)

		var g float64
		switch {
		case f > sampling.MaxExp || (cbowNaNQuirk && math.IsNaN(f)):
			g = (label - 1) * alphaCur
		case f < -sampling.MaxExp:
			g = label * alphaCur
		default:
			g = (label - w.sigmoid.Sigmoid(f)) * alphaCur
		}
		e.AddScaledVec(e, g, v)
		v.AddScaledVec(v, g, h)
		row.Unlock()
	}
	return nil
}
