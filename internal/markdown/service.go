package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Config controls how the Markdown service discovers and renders files.
type Config struct {
	Extensions []string
	Parser     interfaces.ParseOptions
}

// Service combines a Loader with a MarkdownParser and produces fully
// parsed documents: metadata, body, rendered HTML and reading time.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
	loader *Loader
	logger interfaces.Logger
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithParser overrides the goldmark parser.
func WithParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a Markdown service reading from filesystem.
func NewService(filesystem fs.FS, cfg Config, opts ...ServiceOption) *Service {
	svc := &Service{
		cfg:    cfg,
		loader: NewLoader(filesystem, LoaderConfig{Extensions: cfg.Extensions}),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.parser == nil {
		svc.parser = NewGoldmarkParser(cfg.Parser)
	}
	return svc
}

// NewServiceFromDir constructs a Service rooted at dir on the local disk.
func NewServiceFromDir(dir string, cfg Config, opts ...ServiceOption) (*Service, error) {
	filesystem, err := prepareFilesystem(dir)
	if err != nil {
		return nil, err
	}
	return NewService(filesystem, cfg, opts...), nil
}

// List returns the sorted document names available in dir.
func (s *Service) List(ctx context.Context, dir string) ([]string, error) {
	return s.loader.ListNames(ctx, dir)
}

// Load reads the document name from dir and parses it.
func (s *Service) Load(ctx context.Context, dir, name string) (*interfaces.Document, error) {
	src, err := s.loader.Read(ctx, dir, name)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, src.Path, src.Data)
}

// Parse turns raw document bytes into a Document. It is pure apart from
// logging and safe for concurrent use.
func (s *Service) Parse(ctx context.Context, path string, source []byte) (*interfaces.Document, error) {
	doc, err := BuildDocument(path, source)
	if err != nil {
		s.logger.Warn("markdown.frontmatter.malformed", "path", path, "error", err)
		return nil, err
	}
	html, err := s.Render(ctx, doc.Body, interfaces.ParseOptions{})
	if err != nil {
		return nil, fmt.Errorf("markdown render document %s: %w", path, err)
	}
	doc.BodyHTML = html
	doc.ReadingTime = ReadingTime(doc.Body)

	s.logger.Debug("markdown.document.parsed",
		"path", path,
		"reading_time", doc.ReadingTime,
		"keys", len(doc.FrontMatter),
	)
	return doc, nil
}

// Render parses Markdown bytes into HTML using the configured parser. Options
// set in opts are merged over the service defaults.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.parser.ParseWithOptions(markdown, mergeParseOptions(s.cfg.Parser, opts))
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = slices.Clone(override.Extensions)
	}
	result.Sanitize = result.Sanitize || override.Sanitize
	result.HardWraps = result.HardWraps || override.HardWraps
	result.SafeMode = result.SafeMode || override.SafeMode
	return result
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("markdown service: base path %s is not a directory", basePath)
	}
	return os.DirFS(basePath), nil
}
