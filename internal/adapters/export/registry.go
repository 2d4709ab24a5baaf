package export

import (
	"fmt"
	"strings"

	"github.com/SscSPs/factory_ops_app/internal/apperrors"
	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
)

// Registry picks an adapter by format name.
type Registry struct {
	adapters map[string]ports.ExportAdapter
	fallback string
}

// NewRegistry registers adapters; the first one is the default format.
func NewRegistry(adapters ...ports.ExportAdapter) *Registry {
	r := &Registry{adapters: make(map[string]ports.ExportAdapter, len(adapters))}
	for _, a := range adapters {
		if r.fallback == "" {
			r.fallback = a.Format()
		}
		r.adapters[a.Format()] = a
	}
	return r
}

// DefaultRegistry serves json and csv.
func DefaultRegistry() *Registry {
	return NewRegistry(JSONAdapter{}, CSVAdapter{})
}

// Lookup returns the adapter for format, or the default for an empty format.
func (r *Registry) Lookup(format string) (ports.ExportAdapter, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = r.fallback
	}
	a, ok := r.adapters[f]
	if !ok {
		return nil, apperrors.NewValidationFailedError("format", fmt.Sprintf("unsupported export format %q", format))
	}
	return a, nil
}

func artifactName(payload domain.ExportPayload, ext string) string {
	return fmt.Sprintf("daily-logs-%s.%s", payload.GeneratedAt.UTC().Format("20060102-150405"), ext)
}
