package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-folio/internal/category"
)

var (
	ErrNotFound         = errors.New("content: article not found")
	ErrMalformedContent = errors.New("content: article is malformed")
)

// NotFoundError reports a (category, locale, slug) triple with no backing document.
type NotFoundError struct {
	Category category.Category
	Locale   string
	Slug     string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: %s/%s/%s", ErrNotFound.Error(), e.Category, e.Locale, e.Slug)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// MalformedContentError reports a document that exists but cannot be turned
// into an article: its metadata block does not decode, required base fields
// are missing or invalid, or it fails its category schema in strict mode.
type MalformedContentError struct {
	Category category.Category
	Locale   string
	Slug     string
	Issues   []string
	Cause    error
}

func (e *MalformedContentError) Error() string {
	if e == nil {
		return ErrMalformedContent.Error()
	}
	msg := fmt.Sprintf("%s: %s/%s/%s", ErrMalformedContent.Error(), e.Category, e.Locale, e.Slug)
	switch {
	case len(e.Issues) > 0:
		return msg + ": " + strings.Join(e.Issues, "; ")
	case e.Cause != nil:
		return msg + ": " + e.Cause.Error()
	default:
		return msg
	}
}

func (e *MalformedContentError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMalformedContent}
	}
	return []error{ErrMalformedContent, e.Cause}
}

// IsNotFound reports whether err signals a missing article.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformed reports whether err signals an article that exists but is broken.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedContent)
}
