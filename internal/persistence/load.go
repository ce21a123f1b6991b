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

// lineReader is a thin line-at-a-time cursor over the model file. Every
// frame tag, numeric field row, and value row is its own line; raw
// document text and word surfaces are read as whole lines too, since
// both are written on one line each by Save.
type lineReader struct {
	s    *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	return &lineReader{s: s}
}

func (lr *lineReader) next() (string, error) {
	if !lr.s.Scan() {
		if err := lr.s.Err(); err != nil {
			return "", fmt.Errorf("persistence: read line %d: %w", lr.line+1, err)
		}
		return "", fmt.Errorf("persistence: unexpected end of file at line %d", lr.line+1)
	}
	lr.line++
	return lr.s.Text(), nil
}

func (lr *lineReader) expectTag(tag string) error {
	line, err := lr.next()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) != tag {
		return fmt.Errorf("persistence: line %d: expected tag %q, got %q", lr.line, tag, line)
	}
	return nil
}

func (lr *lineReader) fields() ([]string, error) {
	line, err := lr.next()
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

func (lr *lineReader) intField() (int, error) {
	fs, err := lr.fields()
	if err != nil {
		return 0, err
	}
	if len(fs) != 1 {
		return 0, fmt.Errorf("persistence: line %d: expected one integer, got %q", lr.line, fs)
	}
	return strconv.Atoi(fs[0])
}

// Load reads a model previously written by Save, reconstructing the
// train spec, neural model, corpus and vocabulary exactly.
func Load(r io.Reader) (config.TrainSpec, *embedding.Model, *corpus.Corpus, *vocabulary.Vocabulary, error) {
	var spec config.TrainSpec
	lr := newLineReader(r)

	if err := lr.expectTag(tagDoc2Vec); err != nil {
		return spec, nil, nil, nil, err
	}

	spec, err := loadTrainSpec(lr)
	if err != nil {
		return spec, nil, nil, nil, err
	}

	net, err := loadNeuralNetwork(lr)
	if err != nil {
		return spec, nil, nil, nil, err
	}

	corp, err := loadDocuments(lr)
	if err != nil {
		return spec, nil, nil, nil, err
	}

	vocab, err := loadVocabulary(lr)
	if err != nil {
		return spec, nil, nil, nil, err
	}

	if err := lr.expectTag(tagDoc2VecClose); err != nil {
		return spec, nil, nil, nil, err
	}
	return spec, net, corp, vocab, nil
}

func loadTrainSpec(lr *lineReader) (config.TrainSpec, error) {
	var spec config.TrainSpec
	if err := lr.expectTag(tagTrainSpec); err != nil {
		return spec, err
	}
	fs, err := lr.fields()
	if err != nil {
		return spec, err
	}
	if len(fs) != 9 {
		return spec, fmt.Errorf("persistence: line %d: TTrainSpec expected 9 fields, got %d", lr.line, len(fs))
	}
	spec.Dimension, err = strconv.Atoi(fs[0])
	if err != nil {
		return spec, fmt.Errorf("persistence: line %d: dim: %w", lr.line, err)
	}
	hs, err := strconv.Atoi(fs[1])
	if err != nil {
		return spec, fmt.Errorf("persistence: line %d: hs: %w", lr.line, err)
	}
	spec.HierarchicalSoftMax = hs != 0
	cbow, err := strconv.Atoi(fs[2])
	if err != nil {
		return spec, fmt.Errorf("persistence: line %d: cbow: %w", lr.line, err)
	}
	spec.CBOW = cbow != 0
	if spec.NegativeSamples, err = strconv.Atoi(fs[3]); err != nil {
		return spec, fmt.Errorf("persistence: line %d: ns_num: %w", lr.line, err)
	}
	if spec.Iterations, err = strconv.Atoi(fs[4]); err != nil {
		return spec, fmt.Errorf("persistence: line %d: iters: %w", lr.line, err)
	}
	if spec.Window, err = strconv.Atoi(fs[5]); err != nil {
		return spec, fmt.Errorf("persistence: line %d: window: %w", lr.line, err)
	}
	if spec.Sample, err = strconv.ParseFloat(fs[6], 64); err != nil {
		return spec, fmt.Errorf("persistence: line %d: sample: %w", lr.line, err)
	}
	if spec.Threads, err = strconv.Atoi(fs[7]); err != nil {
		return spec, fmt.Errorf("persistence: line %d: threads: %w", lr.line, err)
	}
	if spec.Alpha, err = strconv.ParseFloat(fs[8], 64); err != nil {
		return spec, fmt.Errorf("persistence: line %d: alpha: %w", lr.line, err)
	}
	spec.TrainFilename, err = lr.next()
	if err != nil {
		return spec, err
	}
	if err := lr.expectTag(tagTrainSpecClose); err != nil {
		return spec, err
	}
	return spec, nil
}

func loadNeuralNetwork(lr *lineReader) (*embedding.Model, error) {
	if err := lr.expectTag(tagNeuralNet); err != nil {
		return nil, err
	}
	fs, err := lr.fields()
	if err != nil {
		return nil, err
	}
	if len(fs) != 3 {
		return nil, fmt.Errorf("persistence: line %d: TNeuralNetwork expected 3 fields, got %d", lr.line, len(fs))
	}
	dim, err := strconv.Atoi(fs[0])
	if err != nil {
		return nil, fmt.Errorf("persistence: line %d: net dim: %w", lr.line, err)
	}

	matrices := make([]*embedding.Matrix, len(layerOrder))
	for i := range layerOrder {
		m, err := loadLayer(lr, dim)
		if err != nil {
			return nil, err
		}
		matrices[i] = m
	}
	if err := lr.expectTag(tagNeuralNetClose); err != nil {
		return nil, err
	}
	return embedding.ModelFromLayers(dim, matrices[0], matrices[1], matrices[4], matrices[5], matrices[2], matrices[3]), nil
}

func loadLayer(lr *lineReader, dim int) (*embedding.Matrix, error) {
	if err := lr.expectTag(tagLayer); err != nil {
		return nil, err
	}
	rows, err := lr.intField()
	if err != nil {
		return nil, err
	}
	values := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		if err := lr.expectTag(tagLayerVector); err != nil {
			return nil, err
		}
		length, err := lr.intField()
		if err != nil {
			return nil, err
		}
		fs, err := lr.fields()
		if err != nil {
			return nil, err
		}
		if len(fs) != length {
			return nil, fmt.Errorf("persistence: line %d: layer row expected %d values, got %d", lr.line, length, len(fs))
		}
		row := make([]float64, length)
		for j, f := range fs {
			row[j], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("persistence: line %d: value %d: %w", lr.line, j, err)
			}
		}
		values[i] = row
		if err := lr.expectTag(tagLayerVecClose); err != nil {
			return nil, err
		}
	}
	if err := lr.expectTag(tagLayerClose); err != nil {
		return nil, err
	}
	return embedding.NewFromValues(values, dim), nil
}

func loadDocuments(lr *lineReader) (*corpus.Corpus, error) {
	if err := lr.expectTag(tagDocsHolder); err != nil {
		return nil, err
	}
	count, err := lr.intField()
	if err != nil {
		return nil, err
	}
	docs := make([]corpus.Document, count)
	for i := 0; i < count; i++ {
		if err := lr.expectTag(tagDocument); err != nil {
			return nil, err
		}
		index, err := lr.intField()
		if err != nil {
			return nil, err
		}
		raw, err := lr.next()
		if err != nil {
			return nil, err
		}
		doc, err := corpus.NewDocument(raw, uint32(index))
		if err != nil {
			return nil, fmt.Errorf("persistence: document %d: %w", index, err)
		}
		docs[i] = doc
		if err := lr.expectTag(tagDocumentClose); err != nil {
			return nil, err
		}
	}
	if err := lr.expectTag(tagDocsHolderClos); err != nil {
		return nil, err
	}
	return corpus.FromDocuments(docs)
}

func loadVocabulary(lr *lineReader) (*vocabulary.Vocabulary, error) {
	if err := lr.expectTag(tagVocabulary); err != nil {
		return nil, err
	}
	fs, err := lr.fields()
	if err != nil {
		return nil, err
	}
	if len(fs) != 3 {
		return nil, fmt.Errorf("persistence: line %d: TVocabulary expected 3 fields, got %d", lr.line, len(fs))
	}
	size, err := strconv.Atoi(fs[0])
	if err != nil {
		return nil, fmt.Errorf("persistence: line %d: vocab size: %w", lr.line, err)
	}
	indexCounter, err := strconv.ParseUint(fs[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("persistence: line %d: index counter: %w", lr.line, err)
	}
	trainWords, err := strconv.ParseUint(fs[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("persistence: line %d: train words: %w", lr.line, err)
	}

	entries := make([]*vocabulary.Word, size)
	for i := 0; i < size; i++ {
		word, err := loadWord(lr)
		if err != nil {
			return nil, err
		}
		entries[i] = word
	}
	if err := lr.expectTag(tagVocabularyClos); err != nil {
		return nil, err
	}
	return vocabulary.FromEntries(uint32(indexCounter), trainWords, entries), nil
}

func loadWord(lr *lineReader) (*vocabulary.Word, error) {
	if err := lr.expectTag(tagWord); err != nil {
		return nil, err
	}
	fs, err := lr.fields()
	if err != nil {
		return nil, err
	}
	if len(fs) != 2 {
		return nil, fmt.Errorf("persistence: line %d: TWord expected 2 fields, got %d", lr.line, len(fs))
	}
	freq, err := strconv.ParseUint(fs[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("persistence: line %d: frequency: %w", lr.line, err)
	}
	index, err := strconv.ParseUint(fs[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("persistence: line %d: index: %w", lr.line, err)
	}
	surface, err := lr.next()
	if err != nil {
		return nil, err
	}

	pathLen, err := lr.intField()
	if err != nil {
		return nil, err
	}
	pathFields, err := lr.fields()
	if err != nil {
		return nil, err
	}
	if len(pathFields) != pathLen {
		return nil, fmt.Errorf("persistence: line %d: path expected %d entries, got %d", lr.line, pathLen, len(pathFields))
	}
	path := make([]uint32, pathLen)
	for i, f := range pathFields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("persistence: line %d: path entry %d: %w", lr.line, i, err)
		}
		path[i] = uint32(v)
	}

	codeLen, err := lr.intField()
	if err != nil {
		return nil, err
	}
	codeFields, err := lr.fields()
	if err != nil {
		return nil, err
	}
	if len(codeFields) != codeLen {
		return nil, fmt.Errorf("persistence: line %d: code expected %d entries, got %d", lr.line, codeLen, len(codeFields))
	}
	code := make([]uint8, codeLen)
	for i, f := range codeFields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("persistence: line %d: code entry %d: %w", lr.line, i, err)
		}
		code[i] = uint8(v)
	}

	if err := lr.expectTag(tagWordClose); err != nil {
		return nil, err
	}
	return &vocabulary.Word{
		Surface:   surface,
		Index:     uint32(index),
		Frequency: uint32(freq),
		Code:      code,
		Path:      path,
	}, nil
}
