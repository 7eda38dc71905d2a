package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var ErrContentDirRequired = errors.New("folio config: content directory is required")
var ErrLocalesRequired = errors.New("folio config: at least one locale is required")

// ErrDefaultLocaleUnknown indicates the default locale is not one of the configured locales.
var ErrDefaultLocaleUnknown = errors.New("folio config: default locale must be one of the configured locales")
var ErrExtensionsRequired = errors.New("folio config: at least one document extension is required")
var ErrConcurrencyInvalid = errors.New("folio config: content concurrency must be positive")
var ErrFailurePolicyInvalid = errors.New("folio config: content failure policy is invalid")
var ErrExcerptLengthInvalid = errors.New("folio config: excerpt length must be zero or positive")
var ErrRelatedLimitInvalid = errors.New("folio config: related limit must be positive")
var ErrTimelineWindowInvalid = errors.New("folio config: timeline window size must be positive")
var ErrTimelineAxisInvalid = errors.New("folio config: timeline axis is invalid")
var ErrScrollToleranceInvalid = errors.New("folio config: scroll tolerance must be zero or positive")
var ErrScrollStepInvalid = errors.New("folio config: scroll step ratio must be within (0, 1]")
var ErrSiteBaseURLInvalid = errors.New("folio config: site base url must be an absolute http(s) url")
var ErrFeedLimitInvalid = errors.New("folio config: feed limit must be zero or positive")
var ErrLoggingProviderRequired = errors.New("folio config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("folio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("folio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("folio config: logging format is invalid")

// Config aggregates the settings of the content pipeline.
type Config struct {
	Content  ContentConfig  `mapstructure:"content" json:"content" yaml:"content"`
	Markdown MarkdownConfig `mapstructure:"markdown" json:"markdown" yaml:"markdown"`
	Related  RelatedConfig  `mapstructure:"related" json:"related" yaml:"related"`
	Timeline TimelineConfig `mapstructure:"timeline" json:"timeline" yaml:"timeline"`
	Scroll   ScrollConfig   `mapstructure:"scroll" json:"scroll" yaml:"scroll"`
	Site     SiteConfig     `mapstructure:"site" json:"site" yaml:"site"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging" yaml:"logging"`
	Features Features       `mapstructure:"features" json:"features" yaml:"features"`
}

// ContentConfig locates the document tree and controls batch loading.
type ContentConfig struct {
	Dir              string   `mapstructure:"dir" json:"dir" yaml:"dir"`
	Extensions       []string `mapstructure:"extensions" json:"extensions" yaml:"extensions"`
	Locales          []string `mapstructure:"locales" json:"locales" yaml:"locales"`
	DefaultLocale    string   `mapstructure:"default_locale" json:"defaultLocale" yaml:"default_locale"`
	Concurrency      int      `mapstructure:"concurrency" json:"concurrency" yaml:"concurrency"`
	FailurePolicy    string   `mapstructure:"failure_policy" json:"failurePolicy" yaml:"failure_policy"`
	StrictCategories bool     `mapstructure:"strict_categories" json:"strictCategories" yaml:"strict_categories"`
}

// MarkdownConfig captures parser behaviour for document bodies.
type MarkdownConfig struct {
	Parser        MarkdownParserConfig `mapstructure:"parser" json:"parser" yaml:"parser"`
	ExcerptLength int                  `mapstructure:"excerpt_length" json:"excerptLength" yaml:"excerpt_length"`
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string `mapstructure:"extensions" json:"extensions" yaml:"extensions"`
	Sanitize   bool     `mapstructure:"sanitize" json:"sanitize" yaml:"sanitize"`
	HardWraps  bool     `mapstructure:"hard_wraps" json:"hardWraps" yaml:"hard_wraps"`
	SafeMode   bool     `mapstructure:"safe_mode" json:"safeMode" yaml:"safe_mode"`
}

type RelatedConfig struct {
	Limit int `mapstructure:"limit" json:"limit" yaml:"limit"`
}

type TimelineConfig struct {
	WindowSize int    `mapstructure:"window_size" json:"windowSize" yaml:"window_size"`
	Axis       string `mapstructure:"axis" json:"axis" yaml:"axis"`
}

type ScrollConfig struct {
	Tolerance float64 `mapstructure:"tolerance" json:"tolerance" yaml:"tolerance"`
	StepRatio float64 `mapstructure:"step_ratio" json:"stepRatio" yaml:"step_ratio"`
}

// SiteConfig describes the published site for sitemaps and feeds. Titles
// and descriptions are keyed by locale.
type SiteConfig struct {
	BaseURL      string            `mapstructure:"base_url" json:"baseURL" yaml:"base_url"`
	Titles       map[string]string `mapstructure:"titles" json:"titles" yaml:"titles"`
	Descriptions map[string]string `mapstructure:"descriptions" json:"descriptions" yaml:"descriptions"`
	FeedLimit    int               `mapstructure:"feed_limit" json:"feedLimit" yaml:"feed_limit"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider" json:"provider" yaml:"provider"`
	Level     string   `mapstructure:"level" json:"level" yaml:"level"`
	Format    string   `mapstructure:"format" json:"format" yaml:"format"`
	AddSource bool     `mapstructure:"add_source" json:"addSource" yaml:"add_source"`
	Focus     []string `mapstructure:"focus" json:"focus" yaml:"focus"`
}

// Features toggles module functionality.
type Features struct {
	Logger bool `mapstructure:"logger" json:"logger" yaml:"logger"`
}

// DefaultConfig returns the settings the site ships with.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:           "content",
			Extensions:    []string{".mdx", ".md"},
			Locales:       []string{"pt", "en"},
			DefaultLocale: "pt",
			Concurrency:   8,
			FailurePolicy: "fail",
		},
		Markdown: MarkdownConfig{
			Parser:        MarkdownParserConfig{},
			ExcerptLength: 160,
		},
		Related: RelatedConfig{
			Limit: 3,
		},
		Timeline: TimelineConfig{
			WindowSize: 10,
			Axis:       "horizontal",
		},
		Scroll: ScrollConfig{
			Tolerance: 10,
			StepRatio: 0.8,
		},
		Site: SiteConfig{
			BaseURL: "http://localhost",
			Titles: map[string]string{
				"pt": "Jornalista Desportivo",
				"en": "Sports Journalist",
			},
			Descriptions: map[string]string{
				"pt": "Blog pessoal de desporto, jogos, livros, filmes e viagens",
				"en": "Personal blog about sports, games, books, movies and travel",
			},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if len(cfg.Content.Extensions) == 0 {
		return ErrExtensionsRequired
	}
	if len(cfg.Content.Locales) == 0 {
		return ErrLocalesRequired
	}
	if locale := strings.TrimSpace(cfg.Content.DefaultLocale); locale != "" && !slices.Contains(cfg.Content.Locales, locale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnknown, locale)
	}
	if cfg.Content.Concurrency <= 0 {
		return ErrConcurrencyInvalid
	}
	if policy := strings.ToLower(strings.TrimSpace(cfg.Content.FailurePolicy)); policy != "" && policy != "fail" && policy != "skip" {
		return fmt.Errorf("%w: %s", ErrFailurePolicyInvalid, policy)
	}
	if cfg.Markdown.ExcerptLength < 0 {
		return ErrExcerptLengthInvalid
	}
	if cfg.Related.Limit <= 0 {
		return ErrRelatedLimitInvalid
	}
	if cfg.Timeline.WindowSize <= 0 {
		return ErrTimelineWindowInvalid
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Timeline.Axis)) {
	case "", "horizontal", "vertical":
	default:
		return fmt.Errorf("%w: %s", ErrTimelineAxisInvalid, cfg.Timeline.Axis)
	}
	if cfg.Scroll.Tolerance < 0 {
		return ErrScrollToleranceInvalid
	}
	if cfg.Scroll.StepRatio <= 0 || cfg.Scroll.StepRatio > 1 {
		return ErrScrollStepInvalid
	}
	if base := strings.TrimSpace(cfg.Site.BaseURL); base != "" {
		parsed, err := url.Parse(base)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("%w: %s", ErrSiteBaseURLInvalid, base)
		}
	}
	if cfg.Site.FeedLimit < 0 {
		return ErrFeedLimitInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
