package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by Load, e.g.
// FOLIO_CONTENT_DIR or FOLIO_TIMELINE_WINDOW_SIZE.
const EnvPrefix = "FOLIO"

// LoadOptions select where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit YAML, TOML or JSON file. When empty Load
	// searches SearchPaths for folio.{yaml,toml,json} and carries on with
	// defaults if none exists.
	ConfigFile  string
	SearchPaths []string
	// EnvFiles are loaded into the process environment first. Missing files
	// are ignored. Defaults to ".env".
	EnvFiles []string
}

// Load merges DefaultConfig, the config file and FOLIO_* environment
// variables, in that order of precedence, and validates the result.
func Load(opts LoadOptions) (Config, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("folio")
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{"."}
		}
		for _, path := range paths {
			v.AddConfigPath(path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("folio config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("folio config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("folio config: load env file %s: %w", file, err)
		}
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("content.dir", cfg.Content.Dir)
	v.SetDefault("content.extensions", cfg.Content.Extensions)
	v.SetDefault("content.locales", cfg.Content.Locales)
	v.SetDefault("content.default_locale", cfg.Content.DefaultLocale)
	v.SetDefault("content.concurrency", cfg.Content.Concurrency)
	v.SetDefault("content.failure_policy", cfg.Content.FailurePolicy)
	v.SetDefault("content.strict_categories", cfg.Content.StrictCategories)

	v.SetDefault("markdown.parser.extensions", cfg.Markdown.Parser.Extensions)
	v.SetDefault("markdown.parser.sanitize", cfg.Markdown.Parser.Sanitize)
	v.SetDefault("markdown.parser.hard_wraps", cfg.Markdown.Parser.HardWraps)
	v.SetDefault("markdown.parser.safe_mode", cfg.Markdown.Parser.SafeMode)
	v.SetDefault("markdown.excerpt_length", cfg.Markdown.ExcerptLength)

	v.SetDefault("related.limit", cfg.Related.Limit)

	v.SetDefault("timeline.window_size", cfg.Timeline.WindowSize)
	v.SetDefault("timeline.axis", cfg.Timeline.Axis)

	v.SetDefault("scroll.tolerance", cfg.Scroll.Tolerance)
	v.SetDefault("scroll.step_ratio", cfg.Scroll.StepRatio)

	v.SetDefault("site.base_url", cfg.Site.BaseURL)
	v.SetDefault("site.titles", cfg.Site.Titles)
	v.SetDefault("site.descriptions", cfg.Site.Descriptions)
	v.SetDefault("site.feed_limit", cfg.Site.FeedLimit)

	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)

	v.SetDefault("features.logger", cfg.Features.Logger)
}
