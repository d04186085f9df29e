package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/osint-atlas/atlas/internal/model"
)

// Result is the committed outcome of one catalog resolution. Exactly one of
// two states is possible: live data, or fallback data with Degraded set.
type Result struct {
	Tools []model.Tool
	// Degraded is true when the remote backend was configured but could not
	// be used and the list came from the cache or the static fallback.
	Degraded bool
	// Err holds the fetch failure behind a degraded result.
	Err error
}

// Resolver picks the working tool list: remote when available, otherwise the
// last-good cache, otherwise the static list.
type Resolver struct {
	remote Source
	cache  *Cache
	log    *zap.Logger
}

// NewResolver creates a Resolver. remote and cache may be nil; with no
// remote source the static list is served directly and is not considered
// degraded.
func NewResolver(remote Source, cache *Cache, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{remote: remote, cache: cache, log: log}
}

// Resolve runs one fetch and commits exactly one outcome. A manual retry
// re-runs the same call.
func (r *Resolver) Resolve(ctx context.Context) Result {
	if r.remote == nil {
		return Result{Tools: FallbackTools()}
	}

	tools, err := r.remote.Tools(ctx)
	if err == nil {
		r.log.Info("catalog fetched", zap.Int("tools", len(tools)))
		if r.cache != nil {
			if cacheErr := r.cache.Save(tools); cacheErr != nil {
				r.log.Warn("failed to cache catalog", zap.Error(cacheErr))
			}
		}
		return Result{Tools: tools}
	}

	r.log.Warn("catalog fetch failed, using fallback", zap.Error(err))

	if r.cache != nil {
		if cached, cacheErr := r.cache.Load(); cacheErr == nil && len(cached) > 0 {
			return Result{Tools: cached, Degraded: true, Err: err}
		}
	}

	return Result{Tools: FallbackTools(), Degraded: true, Err: err}
}
