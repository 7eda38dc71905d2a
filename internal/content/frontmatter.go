package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// dateLayouts are tried in order when a date arrives as text.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// baseFields is the text form of the shared metadata, validated before it
// is lifted into Frontmatter.
type baseFields struct {
	Title  string   `json:"title"`
	Date   string   `json:"date"`
	Locale string   `json:"locale"`
	Slug   string   `json:"slug"`
	Tags   []string `json:"tags"`
}

func (b baseFields) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.Date, validation.Required, validation.By(func(value any) error {
			_, err := parseDate(value.(string))
			return err
		})),
		validation.Field(&b.Locale, validation.In(LocalePT, LocaleEN)),
		validation.Field(&b.Slug, validation.By(func(value any) error {
			if s := value.(string); s != "" && !slug.IsValid(s) {
				return validation.NewError("validation_slug_invalid", "must be a lowercase, hyphenated slug")
			}
			return nil
		})),
		validation.Field(&b.Tags, validation.Each(validation.Required)),
	)
}

// DecodeFrontmatter lifts the base shape out of a decoded metadata map. It
// fails with the list of offending fields when title or date are missing,
// the date cannot be parsed, or locale, slug and tags are invalid.
func DecodeFrontmatter(fields map[string]any) (Frontmatter, []string, error) {
	base := baseFields{
		Title:  textValue(fields["title"]),
		Date:   dateText(fields["date"]),
		Locale: textValue(fields["locale"]),
		Slug:   textValue(fields["slug"]),
		Tags:   tagsValue(fields["tags"]),
	}
	if err := base.Validate(); err != nil {
		return Frontmatter{}, validationIssues(err), err
	}

	date, _ := parseDate(base.Date)
	return Frontmatter{
		Title:   base.Title,
		Slug:    base.Slug,
		Locale:  base.Locale,
		Date:    date,
		RawDate: base.Date,
		Excerpt: textValue(fields["excerpt"]),
		Image:   textValue(fields["image"]),
		Tags:    base.Tags,
		Fields:  cloneFields(fields),
	}, nil, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, validation.NewError("validation_date_invalid", "must be a date such as 2006-01-02")
}

func dateText(value any) string {
	if t, ok := value.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.RFC3339)
	}
	return textValue(value)
}

func textValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// tagsValue accepts a list or a comma separated string. Blank entries are
// kept so validation can report them.
func tagsValue(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return trimAll(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, textValue(item))
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return trimAll(strings.Split(v, ","))
	default:
		return []string{textValue(v)}
	}
}

func trimAll(values []string) []string {
	out := slices.Clone(values)
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

func validationIssues(err error) []string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	keys := make([]string, 0, len(fieldErrs))
	for key := range fieldErrs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	issues := make([]string, 0, len(keys))
	for _, key := range keys {
		issues = append(issues, fmt.Sprintf("%s: %v", key, fieldErrs[key]))
	}
	return issues
}
