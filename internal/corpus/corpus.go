package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrDuplicateTag is returned by Load when two documents share a tag.
var ErrDuplicateTag = errors.New("corpus: duplicate document tag")

// ErrEmpty is returned by Load when the reader yields no documents.
var ErrEmpty = errors.New("corpus: no documents in dataset")

// Corpus is the ordered sequence of training documents plus a tag index.
type Corpus struct {
	documents []Document
	tagIndex  map[string]uint32
}

// Load reads one document per line from r. Tags must be unique; an empty
// corpus is an error.
func Load(r io.Reader) (*Corpus, error) {
	c := &Corpus{tagIndex: make(map[string]uint32)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var index uint32
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		doc, err := NewDocument(line, index)
		if err != nil {
			return nil, err
		}
		if _, exists := c.tagIndex[doc.Tag]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, doc.Tag)
		}
		c.tagIndex[doc.Tag] = index
		c.documents = append(c.documents, doc)
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read dataset: %w", err)
	}
	if len(c.documents) == 0 {
		return nil, ErrEmpty
	}
	return c, nil
}

// FromDocuments builds a Corpus directly from an in-memory slice, mainly
// for tests and for the shards produced by Split.
func FromDocuments(docs []Document) (*Corpus, error) {
	c := &Corpus{tagIndex: make(map[string]uint32, len(docs))}
	for _, doc := range docs {
		if _, exists := c.tagIndex[doc.Tag]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, doc.Tag)
		}
		c.tagIndex[doc.Tag] = doc.Index
		c.documents = append(c.documents, doc)
	}
	if len(c.documents) == 0 {
		return nil, ErrEmpty
	}
	return c, nil
}

// Size returns the number of documents.
func (c *Corpus) Size() int { return len(c.documents) }

// Documents returns the ordered document slice. Callers must not mutate it.
func (c *Corpus) Documents() []Document { return c.documents }

// Document returns the document at position idx within [0, Size()).
func (c *Corpus) Document(idx uint32) (Document, error) {
	if int(idx) >= len(c.documents) {
		return Document{}, fmt.Errorf("corpus: document index %d out of range [0,%d)", idx, len(c.documents))
	}
	return c.documents[idx], nil
}

// DocumentByTag looks a document up by its tag.
func (c *Corpus) DocumentByTag(tag string) (Document, bool) {
	idx, ok := c.tagIndex[tag]
	if !ok {
		return Document{}, false
	}
	return c.documents[idx], true
}

// Split partitions the corpus into `parts` contiguous, disjoint shards
// whose union covers [0, Size()) exactly once. When parts does not evenly
// divide Size(), earlier shards take one extra document each so that no
// shard — including the last — goes empty, as long as parts <= Size().
func (c *Corpus) Split(parts int) ([]*Corpus, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("corpus: split parts must be positive, got %d", parts)
	}
	total := len(c.documents)
	if parts > total {
		parts = total
	}

	shards := make([]*Corpus, 0, parts)
	base := total / parts
	extra := total % parts
	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < extra {
			size++
		}
		shard, err := FromDocuments(c.documents[start : start+size])
		if err != nil {
			return nil, err
		}
		shards = append(shards, shard)
		start += size
	}
	return shards, nil
}
