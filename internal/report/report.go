package report

import (
	"math"
)

type ComparisonResult struct {
	TotalSentences         int `json:"total_sentences"`
	ConservedSentences     int `json:"conserved_sentences"`
	ModifiedSentences      int `json:"modified_sentences"`
	SentenceRetouchPercent int `json:"sentence_retouch_percent"`
	TotalWords             int `json:"total_words"`
	ConservedWords         int `json:"conserved_words"`
	WordConservedPercent   int `json:"word_conserved_percent"`
}

// Build derives the result from the counts of the original text. Percentages
// are rounded half away from zero and are 0 when there is nothing to count.
func Build(totalSentences, conservedSentences, totalWords, conservedWords int) *ComparisonResult {
	modified := totalSentences - conservedSentences
	return &ComparisonResult{
		TotalSentences:         totalSentences,
		ConservedSentences:     conservedSentences,
		ModifiedSentences:      modified,
		SentenceRetouchPercent: percent(modified, totalSentences),
		TotalWords:             totalWords,
		ConservedWords:         conservedWords,
		WordConservedPercent:   percent(conservedWords, totalWords),
	}
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
