package catalog

import (
	"context"

	"github.com/osint-atlas/atlas/internal/model"
)

// Source provides the full tool catalog. Implementations return a list the
// caller owns; the working list is replaced wholesale, never merged.
type Source interface {
	Tools(ctx context.Context) ([]model.Tool, error)
}

// StaticSource serves the built-in fallback list.
type StaticSource struct{}

// Tools returns a copy of the static catalog.
func (StaticSource) Tools(context.Context) ([]model.Tool, error) {
	return append([]model.Tool(nil), fallbackTools...), nil
}

// FallbackTools returns a copy of the static catalog without going through
// the Source interface.
func FallbackTools() []model.Tool {
	return append([]model.Tool(nil), fallbackTools...)
}
