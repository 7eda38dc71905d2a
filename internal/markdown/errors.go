package markdown

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFrontMatter indicates the leading metadata block could not be decoded.
	ErrMalformedFrontMatter = errors.New("markdown: malformed front matter")
	// ErrDocumentNotFound indicates no source file backs the requested document.
	ErrDocumentNotFound = errors.New("markdown: document not found")
)

// MalformedFrontMatterError carries the decode failure for a single document.
type MalformedFrontMatterError struct {
	Path string
	Err  error
}

func (e *MalformedFrontMatterError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrMalformedFrontMatter, e.Err)
	}
	return fmt.Sprintf("%v in %s: %v", ErrMalformedFrontMatter, e.Path, e.Err)
}

func (e *MalformedFrontMatterError) Unwrap() []error {
	return []error{ErrMalformedFrontMatter, e.Err}
}

// DocumentNotFoundError reports the lookup that produced no file.
type DocumentNotFoundError struct {
	Dir  string
	Name string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s/%s", ErrDocumentNotFound, e.Dir, e.Name)
}

func (e *DocumentNotFoundError) Unwrap() error {
	return ErrDocumentNotFound
}
