package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"svw.info/sudokugen/internal/domain"
)

// JSON serializes puzzle sets as a single JSON object keyed by puzzle,
// members in generation order. This is the shape downstream renderers
// and serializers consume; the core imposes nothing else on them.
type JSON struct {
	// Indent is applied per nesting level; empty means compact output.
	Indent string
}

func NewJSON() *JSON { return &JSON{Indent: "  "} }

func (e *JSON) Export(ctx context.Context, w io.Writer, s *domain.Set) error {
	if s == nil {
		return errors.New("export: nil set")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", e.Indent)
	return enc.Encode(s)
}

// WriteFile exports the set to path, creating parent directories as
// needed.
func (e *JSON) WriteFile(ctx context.Context, path string, s *domain.Set) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.Export(ctx, f, s)
}
