package corpus

import (
	"fmt"
	"regexp"
	"strings"
)

// wordRunes matches a maximal run of word characters.
var wordRunes = regexp.MustCompile(`\w+`)

// Document is one tagged line of the training corpus: a tag (the substring
// up to the first space) and the ordered word tokens that follow it.
type Document struct {
	Tag   string
	Raw   string
	Index uint32
	Words []string
}

// NewDocument parses raw into a Document at the given corpus index. The tag
// is everything before the first space; the remainder is tokenized by
// maximal runs of word characters.
func NewDocument(raw string, index uint32) (Document, error) {
	sp := strings.IndexByte(raw, ' ')
	if sp < 0 {
		return Document{}, fmt.Errorf("corpus: document %d has no tag separator", index)
	}
	return Document{
		Tag:   raw[:sp],
		Raw:   raw,
		Index: index,
		Words: wordRunes.FindAllString(raw[sp+1:], -1),
	}, nil
}
