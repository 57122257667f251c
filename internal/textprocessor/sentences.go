package textprocessor

import (
	"strings"
)

type SentenceSplitter struct {
	guard *AbbreviationGuard
}

func NewSentenceSplitter(guard *AbbreviationGuard) *SentenceSplitter {
	if guard == nil {
		guard = &AbbreviationGuard{}
	}
	return &SentenceSplitter{guard: guard}
}

// Split returns the normalized sentences of text in reading order, duplicates
// included. Terminators are dropped.
func (s *SentenceSplitter) Split(text string) []string {
	// runs are collapsed first so "etc..." keeps its abbreviation, protection
	// runs again once spaces are gone so "dr . martin" is caught too
	prepared := normalizeSpacing(text)
	prepared = terminatorRunRegex.ReplaceAllString(prepared, ".")
	prepared = s.guard.Protect(prepared)
	prepared = terminatorSpaceRegex.ReplaceAllString(prepared, "$1")
	prepared = s.guard.Protect(prepared)
	prepared = normalizeTerminators(prepared)
	// the leading terminator makes the first sentence look like all others
	prepared = "." + prepared

	fragments := strings.FieldsFunc(prepared, IsTerminator)
	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		sentence := s.guard.Restore(strings.Trim(fragment, " "))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}
