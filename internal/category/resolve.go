package category

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-folio/internal/validation"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// ErrUnresolved indicates metadata that satisfies no category schema.
var ErrUnresolved = errors.New("category: metadata matches no category schema")

// UnresolvedError lists, per category tried, why the schema rejected the metadata.
type UnresolvedError struct {
	Issues map[Category][]validation.ValidationIssue
}

func (e *UnresolvedError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, c := range ordered {
		issues, ok := e.Issues[c]
		if !ok {
			continue
		}
		messages := make([]string, 0, len(issues))
		for _, issue := range issues {
			messages = append(messages, issue.String())
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", c, strings.Join(messages, "; ")))
	}
	if len(parts) == 0 {
		return ErrUnresolved.Error()
	}
	return fmt.Sprintf("%v: %s", ErrUnresolved, strings.Join(parts, ", "))
}

func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolved
}

var compiledSchemas = sync.OnceValues(func() (map[Category]*validation.Schema, error) {
	schemas := make(map[Category]*validation.Schema, len(ordered))
	for _, c := range ordered {
		raw, err := schemaFiles.ReadFile("schemas/" + string(c) + ".json")
		if err != nil {
			return nil, fmt.Errorf("category: load schema %s: %w", c, err)
		}
		schema, err := validation.CompileJSON(string(c), raw)
		if err != nil {
			return nil, err
		}
		schemas[c] = schema
	}
	return schemas, nil
})

// Schema returns the compiled schema for c.
func Schema(c Category) (*validation.Schema, error) {
	schemas, err := compiledSchemas()
	if err != nil {
		return nil, err
	}
	schema, ok := schemas[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return schema, nil
}

// Validate checks fields against the schema of c.
func Validate(c Category, fields map[string]any) error {
	schema, err := Schema(c)
	if err != nil {
		return err
	}
	return schema.Validate(fields)
}

// Resolve decodes fields as a tagged union: each category schema is tried in
// the same priority order Infer uses and the first one that validates
// completely wins. A document that validates against none yields
// *UnresolvedError carrying every schema's complaints.
func Resolve(fields map[string]any) (Category, error) {
	unresolved := &UnresolvedError{Issues: make(map[Category][]validation.ValidationIssue, len(ordered))}
	for _, c := range ordered {
		err := Validate(c, fields)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, validation.ErrSchemaValidation) {
			return "", err
		}
		unresolved.Issues[c] = validation.Issues(err)
	}
	return "", unresolved
}
