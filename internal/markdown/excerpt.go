package markdown

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultExcerptLength is the maximum excerpt size in runes.
const DefaultExcerptLength = 160

const ellipsis = "..."

// Excerpt extracts the visible text of rendered HTML, collapses whitespace
// and truncates it to max runes. max <= 0 selects DefaultExcerptLength.
func Excerpt(htmlBody []byte, max int) string {
	if len(bytes.TrimSpace(htmlBody)) == 0 {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBody))
	if err != nil {
		return ""
	}
	doc.Find("script, style, pre").Remove()
	text := strings.Join(strings.Fields(doc.Text()), " ")
	return Truncate(text, max)
}

// Truncate shortens text longer than max runes to its first max-3 runes,
// trimmed, followed by an ellipsis.
func Truncate(text string, max int) string {
	if max <= 0 {
		max = DefaultExcerptLength
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := max - len(ellipsis)
	if cut < 0 {
		cut = 0
	}
	return strings.TrimSpace(string(runes[:cut])) + ellipsis
}
