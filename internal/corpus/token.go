package corpus

import "strings"

// Normalize lower-cases an ASCII word the way the vocabulary keys its
// entries. Tokenization and normalization are ASCII-only; no Unicode
// case folding is attempted.
func Normalize(word string) string {
	return strings.ToLower(word)
}
