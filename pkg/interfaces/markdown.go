package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations must be stateless so a single instance can serve
// concurrent document parses.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Document is the parsed form of one raw content file: the decoded metadata
// block, the Markdown body without delimiters, the rendered HTML and the
// estimated reading time in minutes.
type Document struct {
	Path        string
	FrontMatter map[string]any
	Body        []byte
	BodyHTML    []byte
	ReadingTime int
}
