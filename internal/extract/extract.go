// Package extract runs the full pipeline that turns one rendered stats
// fragment into a view count: cache check, flatten, scan, choose, sanitize,
// store. The contract is total — callers always get (value, ok), never an
// error — so the host can fall back to showing the original content when ok
// is false.
package extract

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hitcount/internal/cache"
	"hitcount/internal/normalize"
	"hitcount/internal/pick"
)

// DefaultTTL is how long a computed count stays cached.
const DefaultTTL = time.Hour

// MaxValue is the sanity ceiling. Anything above is treated as corrupted or
// adversarial input, not a real counter.
const MaxValue int64 = 1_000_000_000_000

// Extractor wires the pipeline to an optional cache backend. The zero value
// works: no caching, no logging.
type Extractor struct {
	Store cache.Store // nil disables caching
	TTL   time.Duration
	Log   zerolog.Logger
}

// Extract returns the view count found in fragment, or ok=false when no
// confident value exists. Identical fragments hit the cache; failures of any
// kind (empty input, no number, out-of-bounds value, cache trouble) collapse
// into ok=false or a plain recompute, never an error.
func (e *Extractor) Extract(ctx context.Context, fragment string) (int64, bool) {
	if strings.TrimSpace(fragment) == "" {
		return 0, false
	}
	key := cache.KeyFor(fragment)
	if v, ok := e.cached(ctx, key); ok {
		e.Log.Debug().Str("key", key).Int64("value", v).Msg("cache hit")
		return v, true
	}
	v, ok := pick.Choose(normalize.Flatten(fragment))
	if !ok {
		return 0, false
	}
	v, ok = Sanitize(v)
	if !ok {
		return 0, false
	}
	// Only successful extractions are cached; a transient parse failure must
	// not get pinned for the TTL.
	if e.Store != nil {
		if err := e.Store.Set(ctx, key, []byte(strconv.FormatInt(v, 10)), e.ttl()); err != nil {
			e.Log.Debug().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return v, true
}

// cached reads a prior result. A payload that does not parse as an integer is
// deleted and reported as a miss, so one corrupted entry cannot wedge a key
// until expiry.
func (e *Extractor) cached(ctx context.Context, key string) (int64, bool) {
	if e.Store == nil {
		return 0, false
	}
	b, ok, err := e.Store.Get(ctx, key)
	if err != nil {
		e.Log.Debug().Err(err).Str("key", key).Msg("cache read failed")
		return 0, false
	}
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil || v < 0 {
		e.Log.Debug().Str("key", key).Msg("evicting corrupted cache entry")
		_ = e.Store.Delete(ctx, key)
		return 0, false
	}
	return v, true
}

func (e *Extractor) ttl() time.Duration {
	if e.TTL > 0 {
		return e.TTL
	}
	return DefaultTTL
}

// Sanitize bounds-checks a chosen value: negative or above MaxValue is
// rejected, everything else passes through unchanged. The ceiling is
// inclusive.
func Sanitize(raw int64) (int64, bool) {
	if raw < 0 || raw > MaxValue {
		return 0, false
	}
	return raw, true
}
