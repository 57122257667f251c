package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *ComparisonResult {
	return Build(4, 3, 20, 17)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatText))
	out := buf.String()
	assert.Contains(t, out, "Sentences in original text: 4\n")
	assert.Contains(t, out, "Conserved sentences: 3\n")
	assert.Contains(t, out, "Modified or deleted sentences: 1\n")
	assert.Contains(t, out, "Retouched sentence rate: 25 %\n")
	assert.Contains(t, out, "Conserved word rate: 85 %\n")
	assert.NotContains(t, out, "<")
}

func TestRender_Html(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatHtml))
	out := buf.String()
	assert.Contains(t, out, "<strong>Result</strong><br>")
	assert.Contains(t, out, "Sentences in original text: 4<br>")
	assert.Contains(t, out, "<strong>Retouched sentence rate: 25 %</strong>")
}

func TestRender_Json(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatJson))
	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 25, decoded["sentence_retouch_percent"])
	assert.Equal(t, 17, decoded["conserved_words"])
	assert.Len(t, decoded, 7)
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatTable))
	out := buf.String()
	assert.Contains(t, out, "Conserved sentences")
	assert.Contains(t, out, "85 %")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult(), "pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Zero(t, buf.Len())
	assert.False(t, IsValidFormat("pdf"))
	assert.True(t, IsValidFormat(FormatTable))
}
