package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed locales/*.json
var localeFS embed.FS

// FSLoader reads flat JSON bundles named "<lang>.json" from a filesystem.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// DefaultLoader serves the bundles embedded in the SDK (en, de, ru).
func DefaultLoader() *FSLoader {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		// The embedded tree always contains locales/; this is unreachable
		// short of a broken build.
		panic(err)
	}
	return &FSLoader{fsys: sub}
}

// Load reads and decodes the bundle for lang.
func (l *FSLoader) Load(_ context.Context, lang string) (map[string]string, error) {
	raw, err := fs.ReadFile(l.fsys, lang+".json")
	if err != nil {
		return nil, err
	}

	var messages map[string]string
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("decode %s.json: %w", lang, err)
	}
	return messages, nil
}
