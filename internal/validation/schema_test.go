package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookSchema = `{
  "type": "object",
  "required": ["author", "pages"],
  "properties": {
    "author": {"type": "string", "minLength": 1},
    "pages": {"type": "integer", "minimum": 1},
    "rating": {"type": "number", "minimum": 1, "maximum": 5}
  }
}`

func TestSchemaValidateAcceptsDecodedMetadata(t *testing.T) {
	schema := MustCompileJSON("books", []byte(bookSchema))
	assert.Equal(t, "books", schema.Name())

	err := schema.Validate(map[string]any{
		"author":   "Frank Herbert",
		"pages":    412,
		"rating":   4.5,
		"dateRead": time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"extra":    map[string]any{"nested": []any{1, "two"}},
	})
	require.NoError(t, err)
}

func TestSchemaValidateReportsIssues(t *testing.T) {
	schema := MustCompileJSON("books", []byte(bookSchema))

	err := schema.Validate(map[string]any{"pages": 0, "rating": 9})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaValidation))

	var payloadErr *PayloadValidationError
	require.ErrorAs(t, err, &payloadErr)
	assert.Equal(t, "books", payloadErr.Schema)

	issues := Issues(err)
	require.NotEmpty(t, issues)
	locations := make([]string, 0, len(issues))
	for _, issue := range issues {
		locations = append(locations, issue.Location)
	}
	assert.Contains(t, locations, "/pages")
	assert.Contains(t, locations, "/rating")
}

func TestSchemaRejectsFractionalIntegers(t *testing.T) {
	schema := MustCompileJSON("books", []byte(bookSchema))

	err := schema.Validate(map[string]any{"author": "A", "pages": 10.5})
	assert.Error(t, err)
}

func TestCompileRejectsInvalidSchema(t *testing.T) {
	_, err := Compile("broken", map[string]any{"type": 42})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaInvalid))

	assert.Panics(t, func() { MustCompileJSON("broken", []byte("{")) })
}

func TestIssuesFallsBackToMessage(t *testing.T) {
	assert.Nil(t, Issues(nil))
	assert.Equal(t, []ValidationIssue{{Message: "boom"}}, Issues(errors.New("boom")))
}

func TestValidationIssueString(t *testing.T) {
	assert.Equal(t, "#/pages: must be >= 1", ValidationIssue{Location: "/pages", Message: "must be >= 1"}.String())
	assert.Equal(t, "#", ValidationIssue{}.String())
}
