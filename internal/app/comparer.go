package app

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	cfg "github.com/arne314/retouch/internal/config"
	"github.com/arne314/retouch/internal/report"
	"github.com/arne314/retouch/internal/textprocessor"
)

var ErrInvalidInput = errors.New("both the original and the revised text are required")

// segmented form of one text
type Segmentation struct {
	Sentences []string
	Words     []string
}

type Comparer struct {
	splitter *textprocessor.SentenceSplitter
}

func NewComparer(config *cfg.Config) (*Comparer, error) {
	guard, err := textprocessor.NewAbbreviationGuard(config.Abbreviations)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using abbreviations %v", guard.Entries())
	return &Comparer{splitter: textprocessor.NewSentenceSplitter(guard)}, nil
}

func (c *Comparer) Segment(text string) *Segmentation {
	return &Segmentation{
		Sentences: c.splitter.Split(text),
		Words:     textprocessor.SplitWords(text),
	}
}

// Compare measures how much of original survives in revised. It accepts any
// input, blank texts simply count nothing.
func (c *Comparer) Compare(original, revised string) *report.ComparisonResult {
	return c.CompareSegmented(c.Segment(original), c.Segment(revised))
}

func (c *Comparer) CompareSegmented(original, revised *Segmentation) *report.ComparisonResult {
	conservedSentences := textprocessor.CountConservedSentences(original.Sentences, revised.Sentences)
	conservedWords := textprocessor.LongestCommonSubsequence(original.Words, revised.Words)
	result := report.Build(len(original.Sentences), conservedSentences, len(original.Words), conservedWords)
	log.Debugf(
		"Compared %v/%v sentences and %v/%v words: %+v",
		len(original.Sentences), len(revised.Sentences),
		len(original.Words), len(revised.Words), result,
	)
	return result
}

func ValidateInput(original, revised string) error {
	var missing []string
	if strings.TrimSpace(original) == "" {
		missing = append(missing, "original")
	}
	if strings.TrimSpace(revised) == "" {
		missing = append(missing, "revised")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s text is blank", ErrInvalidInput, strings.Join(missing, " and "))
	}
	return nil
}

// CompareInput rejects blank texts before comparing them.
func (c *Comparer) CompareInput(original, revised string) (*report.ComparisonResult, error) {
	if err := ValidateInput(original, revised); err != nil {
		return nil, err
	}
	return c.Compare(original, revised), nil
}
