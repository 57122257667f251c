package textprocessor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// whitespace as understood by ECMAScript's \s, unlike Go's ASCII-only \s
const whitespaceClass = `[\t\n\v\f\r\p{Z}\x{FEFF}]`

var (
	terminatorRunRegex   = regexp.MustCompile(`[.!?]{2,}`)
	terminatorSpaceRegex = regexp.MustCompile(whitespaceClass + `*([.!?])` + whitespaceClass + `*`)
)

type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are not commutative, order matters
var (
	spacingRules = []rewriteRule{
		{regexp.MustCompile(`\x{00A0}`), " "},
		{regexp.MustCompile(whitespaceClass + `+`), " "},
	}
	terminatorRules = []rewriteRule{
		{terminatorRunRegex, "."},
		{terminatorSpaceRegex, "$1"},
		// removing spaces may join terminators again ("a. . b")
		{terminatorRunRegex, "."},
	}
)

// IsTerminator reports whether r ends a sentence.
func IsTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Normalize lowercases text, collapses whitespace and runs of sentence
// terminators and removes spaces around terminators.
func Normalize(text string) string {
	return normalizeTerminators(normalizeSpacing(text))
}

func normalizeSpacing(text string) string {
	// cases.Caser keeps state, so one per call
	text = cases.Lower(language.Und).String(text)
	return applyRules(spacingRules, text)
}

func normalizeTerminators(text string) string {
	text = applyRules(terminatorRules, text)
	// only plain spaces are left at this point
	return strings.Trim(text, " ")
}

func applyRules(rules []rewriteRule, text string) string {
	for _, rule := range rules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
