package textprocessor

import (
	"strings"
)

var terminatorsToSpaces = strings.NewReplacer(".", " ", "!", " ", "?", " ")

// SplitWords returns the normalized words of text. Only terminators are
// stripped, so "chat," and "chat" stay different words.
func SplitWords(text string) []string {
	spaced := terminatorsToSpaces.Replace(Normalize(text))
	tokens := strings.Split(spaced, " ")
	words := tokens[:0]
	for _, token := range tokens {
		if token != "" {
			words = append(words, token)
		}
	}
	return words
}
