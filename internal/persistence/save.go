package persistence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Draif/doc2vec/internal/config"
	"github.com/Draif/doc2vec/internal/corpus"
	"github.com/Draif/doc2vec/internal/embedding"
	"github.com/Draif/doc2vec/internal/vocabulary"
)

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Save writes spec, net, corp and vocab in the package's tagged framing.
func Save(w io.Writer, spec config.TrainSpec, net *embedding.Model, corp *corpus.Corpus, vocab *vocabulary.Vocabulary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, tagDoc2Vec)

	fmt.Fprintln(bw, tagTrainSpec)
	fmt.Fprintf(bw, "%d %d %d %d %d %d %g %d %g\n",
		spec.Dimension, boolInt(spec.HierarchicalSoftMax), boolInt(spec.CBOW),
		spec.NegativeSamples, spec.Iterations, spec.Window, spec.Sample,
		spec.Threads, spec.Alpha)
	fmt.Fprintln(bw, spec.TrainFilename)
	fmt.Fprintln(bw, tagTrainSpecClose)

	fmt.Fprintln(bw, tagNeuralNet)
	fmt.Fprintf(bw, "%d %d %d\n", net.Dim, net.WIn.Rows(), net.DIn.Rows())
	layers := []*embedding.Matrix{net.WIn, net.DIn, net.WNorm, net.DNorm, net.WHS, net.WNeg}
	for _, m := range layers {
		if err := saveLayer(bw, m); err != nil {
			return err
		}
	}
	fmt.Fprintln(bw, tagNeuralNetClose)

	fmt.Fprintln(bw, tagDocsHolder)
	docs := corp.Documents()
	fmt.Fprintln(bw, len(docs))
	for _, doc := range docs {
		fmt.Fprintln(bw, tagDocument)
		fmt.Fprintln(bw, doc.Index)
		fmt.Fprintln(bw, doc.Raw)
		fmt.Fprintln(bw, tagDocumentClose)
	}
	fmt.Fprintln(bw, tagDocsHolderClos)

	fmt.Fprintln(bw, tagVocabulary)
	words := vocab.Words()
	fmt.Fprintf(bw, "%d %d %d\n", len(words), len(words), vocab.TrainWordsCount())
	for _, word := range words {
		fmt.Fprintln(bw, tagWord)
		fmt.Fprintf(bw, "%d %d\n", word.Frequency, word.Index)
		fmt.Fprintln(bw, word.Surface)
		fmt.Fprintln(bw, len(word.Path))
		fmt.Fprintln(bw, joinUint32(word.Path))
		fmt.Fprintln(bw, len(word.Code))
		fmt.Fprintln(bw, joinCode(word.Code))
		fmt.Fprintln(bw, tagWordClose)
	}
	fmt.Fprintln(bw, tagVocabularyClos)

	fmt.Fprintln(bw, tagDoc2VecClose)

	return bw.Flush()
}

func saveLayer(bw *bufio.Writer, m *embedding.Matrix) error {
	fmt.Fprintln(bw, tagLayer)
	fmt.Fprintln(bw, m.Rows())
	for _, row := range m.Values() {
		fmt.Fprintln(bw, tagLayerVector)
		fmt.Fprintf(bw, "%d\n", len(row))
		fmt.Fprintln(bw, joinFloat64(row))
		fmt.Fprintln(bw, tagLayerVecClose)
	}
	fmt.Fprintln(bw, tagLayerClose)
	return nil
}

func joinFloat64(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func joinUint32(vals []uint32) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, " ")
}

func joinCode(vals []uint8) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, " ")
}
