package folio

import "github.com/goliatone/go-folio/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrExtensionsRequired      = runtimeconfig.ErrExtensionsRequired
	ErrLocalesRequired         = runtimeconfig.ErrLocalesRequired
	ErrDefaultLocaleUnknown    = runtimeconfig.ErrDefaultLocaleUnknown
	ErrConcurrencyInvalid      = runtimeconfig.ErrConcurrencyInvalid
	ErrFailurePolicyInvalid    = runtimeconfig.ErrFailurePolicyInvalid
	ErrExcerptLengthInvalid    = runtimeconfig.ErrExcerptLengthInvalid
	ErrRelatedLimitInvalid     = runtimeconfig.ErrRelatedLimitInvalid
	ErrTimelineWindowInvalid   = runtimeconfig.ErrTimelineWindowInvalid
	ErrTimelineAxisInvalid     = runtimeconfig.ErrTimelineAxisInvalid
	ErrScrollToleranceInvalid  = runtimeconfig.ErrScrollToleranceInvalid
	ErrScrollStepInvalid       = runtimeconfig.ErrScrollStepInvalid
	ErrSiteBaseURLInvalid      = runtimeconfig.ErrSiteBaseURLInvalid
	ErrFeedLimitInvalid        = runtimeconfig.ErrFeedLimitInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	ContentConfig        = runtimeconfig.ContentConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	RelatedConfig        = runtimeconfig.RelatedConfig
	TimelineConfig       = runtimeconfig.TimelineConfig
	ScrollConfig         = runtimeconfig.ScrollConfig
	SiteConfig           = runtimeconfig.SiteConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	Features             = runtimeconfig.Features
	LoadOptions          = runtimeconfig.LoadOptions
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads configuration from files, .env files and FOLIO_* variables.
func LoadConfig(opts LoadOptions) (Config, error) {
	return runtimeconfig.Load(opts)
}
