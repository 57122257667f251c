package textprocessor

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// abbreviationDot replaces the period of a protected abbreviation. It contains
// uppercase letters and no terminator, so it never occurs in normalized text.
const abbreviationDot = "{ABBR-DOT}"

var ErrInvalidAbbreviation = errors.New("invalid abbreviation")

// DefaultAbbreviations is the table used when nothing else is configured.
var DefaultAbbreviations = []string{"m.", "mme.", "dr.", "pr.", "etc.", "vs."}

// AbbreviationGuard hides the periods of known abbreviations from the sentence
// splitter. Entries are applied in table order: an entry that is a substring of
// a later one (e.g. "r." before "pr.") wins, which makes the order part of the
// configuration.
type AbbreviationGuard struct {
	entries []string
	masked  []string
}

// NewAbbreviationGuard validates and lowercases entries. Every entry must be a
// single token ending in exactly one period.
func NewAbbreviationGuard(entries []string) (*AbbreviationGuard, error) {
	guard := &AbbreviationGuard{
		entries: make([]string, 0, len(entries)),
		masked:  make([]string, 0, len(entries)),
	}
	for _, entry := range entries {
		abbr := Normalize(entry)
		if err := validateAbbreviation(abbr); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidAbbreviation, entry, err)
		}
		guard.entries = append(guard.entries, abbr)
		guard.masked = append(guard.masked, strings.TrimSuffix(abbr, ".")+abbreviationDot)
	}
	return guard, nil
}

func validateAbbreviation(abbr string) error {
	if !strings.HasSuffix(abbr, ".") {
		return errors.New("must end with a period")
	}
	body := strings.TrimSuffix(abbr, ".")
	if body == "" {
		return errors.New("empty abbreviation")
	}
	for _, r := range body {
		if IsTerminator(r) {
			return errors.New("only the trailing period is allowed")
		}
		if unicode.IsSpace(r) {
			return errors.New("must be a single token")
		}
	}
	return nil
}

// Entries returns a copy of the normalized table in application order.
func (g *AbbreviationGuard) Entries() []string {
	entries := make([]string, len(g.entries))
	copy(entries, g.entries)
	return entries
}

// Protect expects lowercase text with collapsed whitespace.
func (g *AbbreviationGuard) Protect(text string) string {
	for i, abbr := range g.entries {
		text = strings.ReplaceAll(text, abbr, g.masked[i])
	}
	return text
}

func (g *AbbreviationGuard) Restore(text string) string {
	return strings.ReplaceAll(text, abbreviationDot, ".")
}
