package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatHtml  = "html"
	FormatJson  = "json"
)

var (
	ErrUnknownFormat = errors.New("unknown report format")
	Formats          = []string{FormatText, FormatTable, FormatHtml, FormatJson}
)

type TextHtmlBuilder struct {
	textBuilder *strings.Builder
	htmlBuilder *strings.Builder
}

func NewTextHtmlBuilder() *TextHtmlBuilder {
	return &TextHtmlBuilder{
		textBuilder: new(strings.Builder),
		htmlBuilder: new(strings.Builder),
	}
}

func (t *TextHtmlBuilder) Write(text, html string) {
	t.textBuilder.WriteString(text)
	t.htmlBuilder.WriteString(html)
}

func (t *TextHtmlBuilder) WriteLine(text, html string) {
	t.Write(text, html)
	t.NewLine()
}

func (t *TextHtmlBuilder) NewLine() {
	t.Write("\n", "<br>\n")
}

func (t *TextHtmlBuilder) Text() string {
	return t.textBuilder.String()
}

func (t *TextHtmlBuilder) Html() string {
	return t.htmlBuilder.String()
}

func wrapHtmlStrong(s string) string {
	return fmt.Sprintf("<strong>%s</strong>", s)
}

func formatAttribute(name string, value string) (string, string) {
	textMessage := fmt.Sprintf("%s: %s", name, value)
	htmlMessage := fmt.Sprintf("%s: %s", html.EscapeString(name), html.EscapeString(value))
	return textMessage, htmlMessage
}

func formatBold(message string) (string, string) {
	return message, wrapHtmlStrong(html.EscapeString(message))
}

type attribute struct {
	name  string
	value string
}

func sentenceAttributes(r *ComparisonResult) []attribute {
	return []attribute{
		{"Sentences in original text", strconv.Itoa(r.TotalSentences)},
		{"Conserved sentences", strconv.Itoa(r.ConservedSentences)},
		{"Modified or deleted sentences", strconv.Itoa(r.ModifiedSentences)},
	}
}

func wordAttributes(r *ComparisonResult) []attribute {
	return []attribute{
		{"Words in original text", strconv.Itoa(r.TotalWords)},
		{"Conserved words", strconv.Itoa(r.ConservedWords)},
	}
}

func retouchRate(r *ComparisonResult) attribute {
	return attribute{"Retouched sentence rate", fmt.Sprintf("%d %%", r.SentenceRetouchPercent)}
}

func conservationRate(r *ComparisonResult) attribute {
	return attribute{"Conserved word rate", fmt.Sprintf("%d %%", r.WordConservedPercent)}
}

// Summary renders the result panel as plain text and html.
func Summary(r *ComparisonResult) *TextHtmlBuilder {
	builder := NewTextHtmlBuilder()
	builder.WriteLine(formatBold("Result"))
	builder.NewLine()
	for _, attr := range sentenceAttributes(r) {
		builder.WriteLine(formatAttribute(attr.name, attr.value))
	}
	builder.NewLine()
	rate := retouchRate(r)
	builder.WriteLine(formatBold(fmt.Sprintf("%s: %s", rate.name, rate.value)))
	builder.NewLine()
	for _, attr := range wordAttributes(r) {
		builder.WriteLine(formatAttribute(attr.name, attr.value))
	}
	builder.NewLine()
	rate = conservationRate(r)
	builder.WriteLine(formatBold(fmt.Sprintf("%s: %s", rate.name, rate.value)))
	return builder
}

func renderTable(w io.Writer, r *ComparisonResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	rows := append(sentenceAttributes(r), retouchRate(r))
	rows = append(rows, wordAttributes(r)...)
	rows = append(rows, conservationRate(r))
	for _, row := range rows {
		if err := table.Append([]string{row.name, row.value}); err != nil {
			return err
		}
	}
	return table.Render()
}

// Render writes r to w in one of Formats.
func Render(w io.Writer, r *ComparisonResult, format string) error {
	var err error
	switch format {
	case FormatText:
		_, err = io.WriteString(w, Summary(r).Text())
	case FormatHtml:
		_, err = io.WriteString(w, Summary(r).Html())
	case FormatTable:
		err = renderTable(w, r)
	case FormatJson:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s report: %w", format, err)
	}
	return nil
}

func IsValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}
