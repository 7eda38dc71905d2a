package markdown

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExcerptExtractsVisibleText(t *testing.T) {
	html := []byte("<h1>Title</h1>\n<p>First   <em>paragraph</em>.</p>\n<pre><code>skip()</code></pre>\n<p>Second.</p>\n")
	assert.Equal(t, "Title First paragraph. Second.", Excerpt(html, 0))
}

func TestExcerptTruncates(t *testing.T) {
	text := strings.Repeat("abc ", 60)
	got := Excerpt([]byte("<p>"+text+"</p>"), 20)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 20)
	assert.Equal(t, "abc abc abc abc a...", got)
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "ção", Truncate("ção", 3))
	assert.Equal(t, "çã...", Truncate("çãoçãoção", 5))
	assert.Equal(t, "", Excerpt(nil, 10))
}
