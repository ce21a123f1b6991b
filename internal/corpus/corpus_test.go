package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCorpus(t *testing.T, n int) *Corpus {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("doc")
		sb.WriteString(string(rune('0' + i)))
		sb.WriteString(" the cat sat\n")
	}
	c, err := Load(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return c
}

func TestSplitCoversEveryDocumentExactlyOnce(t *testing.T) {
	c := buildCorpus(t, 10)
	shards, err := c.Split(4)
	require.NoError(t, err)

	seen := make(map[uint32]bool)
	for _, shard := range shards {
		assert.NotZero(t, shard.Size(), "no shard should be empty when parts <= total")
		for _, doc := range shard.Documents() {
			assert.False(t, seen[doc.Index], "document %d covered by more than one shard", doc.Index)
			seen[doc.Index] = true
		}
	}
	assert.Len(t, seen, 10)
	for i := uint32(0); i < 10; i++ {
		assert.True(t, seen[i])
	}
}

func TestSplitClampsPartsToDocumentCount(t *testing.T) {
	c := buildCorpus(t, 3)
	shards, err := c.Split(10)
	require.NoError(t, err)
	assert.Len(t, shards, 3)
	for _, shard := range shards {
		assert.Equal(t, 1, shard.Size())
	}
}

func TestSplitRejectsNonPositiveParts(t *testing.T) {
	c := buildCorpus(t, 3)
	_, err := c.Split(0)
	assert.Error(t, err)
}

func TestLoadRejectsDuplicateTags(t *testing.T) {
	_, err := Load(strings.NewReader("a one two\na three four\n"))
	assert.ErrorIs(t, err, ErrDuplicateTag)
}

func TestLoadRejectsEmptyDataset(t *testing.T) {
	_, err := Load(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNewDocumentTokenizesOnWordRuns(t *testing.T) {
	doc, err := NewDocument("tag1 The cat, sat: on-mat!", 0)
	require.NoError(t, err)
	assert.Equal(t, "tag1", doc.Tag)
	assert.Equal(t, []string{"The", "cat", "sat", "on", "mat"}, doc.Words)
}

func TestNormalizeLowercasesASCII(t *testing.T) {
	assert.Equal(t, "hello", Normalize("HeLLo"))
}
