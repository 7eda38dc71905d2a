package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

func TestGoldmarkParserParse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	require.NoError(t, err)

	got := string(html)
	assert.Contains(t, got, `<h1 id="heading">Heading</h1>`)
	assert.Contains(t, got, "<strong>world</strong>")
}

func TestGoldmarkParserExtensions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	source := []byte("| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~")

	html, err := parser.Parse(source)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")
	assert.Contains(t, string(html), "<del>gone</del>")

	html, err = parser.ParseWithOptions(source, interfaces.ParseOptions{Extensions: []string{"unknown"}})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<table>")
}

func TestGoldmarkParserRawHTMLModes(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	source := []byte("<div class=\"score\">3-1</div>\n\n<script>alert(1)</script>\n")

	html, err := parser.Parse(source)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<div class="score">`)

	html, err = parser.ParseWithOptions(source, interfaces.ParseOptions{SafeMode: true})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<div")
	assert.Contains(t, string(html), "raw HTML omitted")

	html, err = parser.ParseWithOptions(source, interfaces.ParseOptions{Sanitize: true})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "3-1")
}

func TestGoldmarkParserHardWraps(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{HardWraps: true})

	html, err := parser.Parse([]byte("line one\nline two"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<br>")
}
