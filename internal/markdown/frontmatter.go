package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

// ParseFrontMatter splits the leading metadata block (YAML, TOML or JSON)
// from source and decodes it into a key/value map. Keys are accepted as-is;
// shape validation belongs to the caller. Sources without a metadata block
// return an empty map and the full input as body.
func ParseFrontMatter(source []byte) (map[string]any, []byte, error) {
	meta := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, &MalformedFrontMatterError{Err: err}
	}

	return sanitizeMap(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied path and
// raw content. BodyHTML and ReadingTime are left for the renderer.
func BuildDocument(path string, source []byte) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		if malformed, ok := err.(*MalformedFrontMatterError); ok {
			malformed.Path = path
		}
		return nil, err
	}

	return &interfaces.Document{
		Path:        path,
		FrontMatter: meta,
		Body:        body,
	}, nil
}

// sanitizeMap rewrites YAML decoder output so nested maps are keyed by
// string, which keeps the values encodable as JSON.
func sanitizeMap(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = sanitizeValue(value)
	}
	return out
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return sanitizeMap(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = sanitizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = sanitizeValue(item)
		}
		return out
	default:
		return v
	}
}
