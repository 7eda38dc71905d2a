package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// DefaultExtensions lists the source extensions the loader recognises, in
// lookup priority order.
var DefaultExtensions = []string{".mdx", ".md"}

// LoaderConfig configures how documents are discovered within an fs.FS.
type LoaderConfig struct {
	// Extensions overrides DefaultExtensions. Earlier entries win when two
	// files share a stem.
	Extensions []string
}

// Loader resolves document sources by directory and name inside an fs.FS.
// Directories are slash-separated and relative to the filesystem root.
type Loader struct {
	fs         fs.FS
	extensions []string
}

// Source is the raw content of one document file.
type Source struct {
	Path string
	Data []byte
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	return &Loader{
		fs:         filesystem,
		extensions: normalizeExtensions(cfg.Extensions),
	}
}

// Extensions reports the recognised extensions in priority order.
func (l *Loader) Extensions() []string {
	return slices.Clone(l.extensions)
}

// ListNames returns the sorted, de-duplicated stems of every recognised file
// directly inside dir. A missing directory yields no names and no error.
func (l *Loader) ListNames(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fs, cleanDir(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("markdown loader list %s: %w", dir, err)
	}

	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stem, ok := l.stem(entry.Name())
		if !ok {
			continue
		}
		if _, dup := seen[stem]; dup {
			continue
		}
		seen[stem] = struct{}{}
		names = append(names, stem)
	}
	slices.Sort(names)
	return names, nil
}

// Read loads the document named name from dir, trying each extension in
// priority order. A miss on every extension yields *DocumentNotFoundError.
func (l *Loader) Read(ctx context.Context, dir, name string) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, &DocumentNotFoundError{Dir: dir, Name: name}
	}

	base := cleanDir(dir)
	for _, ext := range l.extensions {
		candidate := path.Join(base, name+ext)
		if !fs.ValidPath(candidate) {
			return nil, &DocumentNotFoundError{Dir: dir, Name: name}
		}
		data, err := fs.ReadFile(l.fs, candidate)
		if err == nil {
			return &Source{Path: candidate, Data: data}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("markdown loader read %s: %w", candidate, err)
		}
	}
	return nil, &DocumentNotFoundError{Dir: dir, Name: name}
}

func (l *Loader) stem(filename string) (string, bool) {
	ext := path.Ext(filename)
	if ext == "" || !slices.Contains(l.extensions, ext) {
		return "", false
	}
	stem := strings.TrimSuffix(filename, ext)
	return stem, stem != ""
}

func cleanDir(dir string) string {
	dir = strings.Trim(path.Clean("/"+strings.ReplaceAll(dir, `\`, "/")), "/")
	if dir == "" {
		return "."
	}
	return dir
}

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return slices.Clone(DefaultExtensions)
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}
	if len(out) == 0 {
		return slices.Clone(DefaultExtensions)
	}
	return out
}
