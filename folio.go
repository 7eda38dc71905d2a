package folio

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-folio/internal/category"
	articlescmd "github.com/goliatone/go-folio/internal/commands/articles"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/console"
	"github.com/goliatone/go-folio/internal/logging/gologger"
	"github.com/goliatone/go-folio/internal/markdown"
	"github.com/goliatone/go-folio/internal/publish"
	"github.com/goliatone/go-folio/internal/scroll"
	"github.com/goliatone/go-folio/internal/timeline"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Store exports the article store contract.
type Store = content.Store

// Article exports the parsed article record.
type Article = content.Article

// ListingItem exports the body-less projection used by index views.
type ListingItem = content.ListingItem

// Query exports the listing filter.
type Query = content.Query

// Category exports the closed set of article categories.
type Category = category.Category

// PeriodGroup exports one month of a timeline.
type PeriodGroup = timeline.PeriodGroup

// ScrollController exports the timeline scroll controller.
type ScrollController = *scroll.Controller

// Presenter exports the sink article commands write their results to.
type Presenter = articlescmd.Presenter

// CommandHandlers exports the article command handlers.
type CommandHandlers = articlescmd.HandlerSet

// CommandRegistry exports the registration contract accepted by Commands.
type CommandRegistry = articlescmd.CommandRegistry

// SitemapEntry exports one url of the sitemap.
type SitemapEntry = publish.SitemapEntry

// Feed exports the article feed of one locale.
type Feed = publish.Feed

// Option customises a Module at construction time.
type Option func(*options)

type options struct {
	fsys     fs.FS
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
}

// WithFS reads documents from fsys instead of Content.Dir.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithMarkdownParser overrides the goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

// Module represents the top level folio runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	markdown *markdown.Service
	store    content.Store
}

// New validates cfg and wires the markdown service, the article store and
// the logging provider.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	provider := o.provider
	if provider == nil {
		var err error
		if provider, err = buildLoggerProvider(cfg); err != nil {
			return nil, err
		}
	}

	mdCfg := markdown.Config{
		Extensions: cfg.Content.Extensions,
		Parser: interfaces.ParseOptions{
			Extensions: cfg.Markdown.Parser.Extensions,
			Sanitize:   cfg.Markdown.Parser.Sanitize,
			HardWraps:  cfg.Markdown.Parser.HardWraps,
			SafeMode:   cfg.Markdown.Parser.SafeMode,
		},
	}
	mdOpts := []markdown.ServiceOption{markdown.WithLogger(logging.MarkdownLogger(provider))}
	if o.parser != nil {
		mdOpts = append(mdOpts, markdown.WithParser(o.parser))
	}

	var svc *markdown.Service
	if o.fsys != nil {
		svc = markdown.NewService(o.fsys, mdCfg, mdOpts...)
	} else {
		var err error
		if svc, err = markdown.NewServiceFromDir(cfg.Content.Dir, mdCfg, mdOpts...); err != nil {
			return nil, err
		}
	}

	policy, _ := content.ParsePolicy(cfg.Content.FailurePolicy)
	store := content.NewStore(svc,
		content.WithLogger(logging.ContentLogger(provider)),
		content.WithLocales(cfg.Content.Locales...),
		content.WithConcurrency(cfg.Content.Concurrency),
		content.WithFailurePolicy(policy),
		content.WithStrictCategories(cfg.Content.StrictCategories),
		content.WithExcerptLength(cfg.Markdown.ExcerptLength),
	)

	return &Module{cfg: cfg, provider: provider, markdown: svc, store: store}, nil
}

// Config returns the validated configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Store exposes the article store.
func (m *Module) Store() Store {
	return m.store
}

// Markdown exposes the markdown service backing the store.
func (m *Module) Markdown() *markdown.Service {
	return m.markdown
}

// Logger returns the named logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}

// Commands builds the article command handlers writing to out. When reg is
// not nil every handler is registered with it.
func (m *Module) Commands(out Presenter, reg CommandRegistry) (*CommandHandlers, error) {
	return articlescmd.RegisterArticleCommands(reg, m.store, out, m.provider, articlescmd.Defaults{
		RelatedLimit: m.cfg.Related.Limit,
		WindowSize:   m.cfg.Timeline.WindowSize,
		Axis:         m.axis(),
	})
}

// Timeline groups items with the configured window size and axis.
func (m *Module) Timeline(items []ListingItem) []PeriodGroup {
	groups := timeline.Group(items, timeline.Options{
		WindowSize: m.cfg.Timeline.WindowSize,
		Mode:       timeline.ModeForAxis(m.axis()),
	})
	logging.TimelineLogger(m.provider).Debug("timeline.grouped", "items", len(items), "groups", len(groups))
	return groups
}

// NewScrollController attaches a controller with the configured tolerance
// and step ratio to source. Call Start on the result to begin tracking.
func (m *Module) NewScrollController(source scroll.Source) ScrollController {
	return scroll.New(source, scroll.Options{
		Axis:      m.axis(),
		Tolerance: m.cfg.Scroll.Tolerance,
		StepRatio: m.cfg.Scroll.StepRatio,
		Logger:    logging.ScrollLogger(m.provider),
	})
}

// Site returns the published site settings.
func (m *Module) Site() publish.Site {
	return publish.Site{
		BaseURL:      m.cfg.Site.BaseURL,
		Titles:       m.cfg.Site.Titles,
		Descriptions: m.cfg.Site.Descriptions,
		FeedLimit:    m.cfg.Site.FeedLimit,
	}
}

// Sitemap lists every page of the site in every configured locale.
func (m *Module) Sitemap(ctx context.Context, now time.Time) ([]SitemapEntry, error) {
	return publish.Sitemap(ctx, m.store, m.Site(), m.cfg.Content.Locales, now)
}

// Feed builds the newest-first feed of locale.
func (m *Module) Feed(ctx context.Context, locale string, now time.Time) (Feed, error) {
	return publish.BuildFeed(ctx, m.store, m.Site(), locale, now)
}

func (m *Module) axis() timeline.Axis {
	if axis := strings.ToLower(strings.TrimSpace(m.cfg.Timeline.Axis)); axis != "" {
		return timeline.Axis(axis)
	}
	return timeline.Horizontal
}

func buildLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nopProvider{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	case "console":
		opts := console.Options{Writer: os.Stderr}
		if level, ok := console.ParseLevel(cfg.Logging.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
}

type nopProvider struct{}

func (nopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
