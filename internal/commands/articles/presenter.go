package articlescmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-folio/internal/category"
)

// Format selects how results are printed.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be table, json or yaml", value)
	}
}

// Presenter receives the results of article commands.
type Presenter interface {
	Article(view ArticleView) error
	Listing(view ListingView) error
	Timeline(view TimelineView) error
	Paths(view PathsView) error
	Tags(view TagsView) error
}

// WriterPresenter prints results to a writer as tables, JSON or YAML.
type WriterPresenter struct {
	out    io.Writer
	format Format
	bold   *color.Color
	muted  *color.Color
	alert  *color.Color
}

var _ Presenter = (*WriterPresenter)(nil)

// NewWriterPresenter builds a presenter. Colors only apply to tables.
func NewWriterPresenter(out io.Writer, format Format, useColors bool) *WriterPresenter {
	if out == nil {
		out = os.Stdout
	}
	p := &WriterPresenter{
		out:    out,
		format: format,
		bold:   color.New(color.FgCyan, color.Bold),
		muted:  color.New(color.Faint),
		alert:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.bold, p.muted, p.alert} {
		if useColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *WriterPresenter) Article(view ArticleView) error {
	if p.format != FormatTable {
		if !view.ShowHTML && view.Article != nil {
			stripped := *view.Article
			stripped.HTML = ""
			view.Article = &stripped
		}
		return p.encode(view)
	}

	a := view.Article
	fmt.Fprintln(p.out, p.bold.Sprint(a.Frontmatter.Title))
	rows := [][]string{
		{"category", labelFor(a.ResolvedCategory())},
		{"locale", a.Locale},
		{"slug", a.Slug},
		{"date", formatDate(a.Frontmatter.Date)},
		{"reading time", strconv.Itoa(a.ReadingTime) + " min"},
		{"tags", strings.Join(a.Frontmatter.Tags, ", ")},
		{"excerpt", a.Frontmatter.Excerpt},
	}
	if a.Frontmatter.Image != "" {
		rows = append(rows, []string{"image", a.Frontmatter.Image})
	}
	if view.Progress != nil {
		rows = append(rows, []string{"progress", strconv.Itoa(*view.Progress) + "%"})
	}
	rows = append(rows, detailRows(view.Details)...)
	if err := p.table([]string{"FIELD", "VALUE"}, rows); err != nil {
		return err
	}
	if view.ShowHTML {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, a.HTML)
	}
	return nil
}

func (p *WriterPresenter) Listing(view ListingView) error {
	if p.format != FormatTable {
		return p.encode(view)
	}

	fmt.Fprintln(p.out, p.bold.Sprint(view.Title))
	rows := make([][]string, 0, len(view.Items))
	for _, item := range view.Items {
		rows = append(rows, []string{
			formatDate(item.Date),
			labelFor(item.Category),
			item.Locale,
			item.Slug,
			item.Title,
			strings.Join(item.Tags, ", "),
			strconv.Itoa(item.ReadingTime),
		})
	}
	if err := p.table([]string{"DATE", "CATEGORY", "LOCALE", "SLUG", "TITLE", "TAGS", "MIN"}, rows); err != nil {
		return err
	}

	summary := fmt.Sprintf("showing %d of %d", len(view.Items), view.Total)
	if view.HasMore {
		summary += ", more available"
	}
	fmt.Fprintln(p.out, p.muted.Sprint(summary))
	return p.failures(view.Failures)
}

func (p *WriterPresenter) Timeline(view TimelineView) error {
	if p.format != FormatTable {
		return p.encode(view)
	}

	var rows [][]string
	for _, group := range view.Groups {
		period := group.Label(view.Locale)
		for i, entry := range group.Entries {
			label := ""
			if i == 0 {
				label = period
			}
			rows = append(rows, []string{
				label,
				strconv.Itoa(entry.Index),
				string(entry.Placement),
				formatDate(entry.Item.Date),
				labelFor(entry.Item.Category),
				entry.Item.Title,
			})
		}
	}
	if err := p.table([]string{"PERIOD", "#", "SIDE", "DATE", "CATEGORY", "TITLE"}, rows); err != nil {
		return err
	}
	return p.failures(view.Failures)
}

func (p *WriterPresenter) Paths(view PathsView) error {
	if p.format != FormatTable {
		return p.encode(view)
	}
	rows := make([][]string, 0, len(view.Paths))
	for _, path := range view.Paths {
		rows = append(rows, []string{path.Locale, path.Slug, "/" + path.Locale + "/" + string(view.Category) + "/" + path.Slug})
	}
	return p.table([]string{"LOCALE", "SLUG", "ROUTE"}, rows)
}

func (p *WriterPresenter) Tags(view TagsView) error {
	if p.format != FormatTable {
		return p.encode(view)
	}
	for _, tag := range view.Tags {
		fmt.Fprintln(p.out, tag)
	}
	return nil
}

func (p *WriterPresenter) failures(failures []FailureView) error {
	if len(failures) == 0 {
		return nil
	}
	fmt.Fprintln(p.out, p.alert.Sprintf("%d document(s) could not be loaded", len(failures)))
	rows := make([][]string, 0, len(failures))
	for _, f := range failures {
		rows = append(rows, []string{string(f.Category), f.Locale, f.Slug, f.Error})
	}
	return p.table([]string{"CATEGORY", "LOCALE", "SLUG", "ERROR"}, rows)
}

func (p *WriterPresenter) encode(value any) error {
	switch p.format {
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}
}

func (p *WriterPresenter) table(headers []string, rows [][]string) error {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// detailRows flattens the typed category record into sorted key/value rows.
func detailRows(details category.Details) [][]string {
	if details == nil {
		return nil
	}
	encoded, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	fields := map[string]any{}
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, formatValue(fields[key])})
	}
	return rows
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+"="+formatValue(v[key]))
		}
		return strings.Join(parts, " ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func labelFor(cat category.Category) string {
	if !cat.Valid() {
		return string(cat)
	}
	return cat.Emoji() + " " + cat.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
