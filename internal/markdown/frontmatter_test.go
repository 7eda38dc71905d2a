package markdown

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestParseFrontMatterYAML(t *testing.T) {
	meta, body, err := ParseFrontMatter(readFixture(t, "testdata/basic.mdx"))
	require.NoError(t, err)

	assert.Equal(t, "Benfica 3-1 Porto: a derby to remember", meta["title"])
	assert.Equal(t, "2024-03-10", meta["date"])
	assert.Equal(t, []any{"benfica", "porto", "liga"}, meta["tags"])
	assert.Equal(t, "3-1", meta["result"])

	teams, ok := meta["teams"].(map[string]any)
	require.True(t, ok, "nested maps should be keyed by string, got %T", meta["teams"])
	assert.Equal(t, "Benfica", teams["home"])

	assert.Contains(t, string(body), "# Benfica 3-1 Porto")
	assert.NotContains(t, string(body), "competition:")
}

func TestParseFrontMatterTOML(t *testing.T) {
	meta, body, err := ParseFrontMatter(readFixture(t, "testdata/travel.md"))
	require.NoError(t, err)

	assert.Equal(t, "Kyoto", meta["destination"])
	assert.Equal(t, "2023-11-02", meta["date"])
	assert.Contains(t, string(body), "matcha")
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("just a body\n"))
	require.NoError(t, err)
	assert.Empty(t, meta)
	assert.Equal(t, "just a body\n", string(body))
}

func TestBuildDocumentReportsMalformedFrontMatter(t *testing.T) {
	_, err := BuildDocument("books/en/broken.mdx", readFixture(t, "testdata/malformed.mdx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFrontMatter))

	var malformed *MalformedFrontMatterError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "books/en/broken.mdx", malformed.Path)
	assert.Contains(t, err.Error(), "books/en/broken.mdx")
}

func TestSanitizeValueRewritesNestedCollections(t *testing.T) {
	got := sanitizeValue([]any{
		map[any]any{1: "one", "two": []any{map[any]any{"deep": true}}},
	})

	want := []any{
		map[string]any{"1": "one", "two": []any{map[string]any{"deep": true}}},
	}
	assert.Equal(t, want, got)
}
