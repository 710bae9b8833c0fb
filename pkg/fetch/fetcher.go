// Package fetch provides a cache-aside data-fetch layer that reports its
// outcomes as result values. It is the SDK's reference producer for the
// result package: every lookup and load is returned as a
// result.Result rather than a bare (value, error) pair, so presentation
// code can branch on Idle/Loading/Success/Failure uniformly.
//
// # Cache-Aside Flow
//
// A Fetcher sits in front of a Cache (typically the redis-backed
// RedisCache) and a caller-supplied loader:
//
//	fetcher := fetch.NewFetcher[Profile](cache, fetch.DefaultFreshFor, fetch.DefaultRetainFor)
//	res := fetcher.Fetch(ctx, "profile:42", loadProfile)
//
// Fresh cache entries are served as Success without invoking the loader.
// Stale entries trigger a load; if the load fails, the stale payload rides
// inside the Failure so the caller can keep rendering the last known
// value. A cold key with a failing loader yields a plain Failure.
//
// # Freshness
//
// Entries are stored as a JSON envelope with their write time. An entry is
// fresh for the configured freshness window and retained (for the
// stale-data path) until the retention window expires.
package fetch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
	"github.com/LoadstoneSoft/loadstone-core/pkg/result"
)

// Cache is the storage contract the fetcher reads through. Get reports a
// missing key as ok == false, not as an error. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Loader produces the authoritative value for a key when the cache cannot
// serve it. Implementations should honor ctx cancellation.
type Loader[D any] func(ctx context.Context) (D, error)

// envelope is the stored form of a cache entry. StoredAt drives the
// freshness decision; the payload stays opaque until decoded.
type envelope struct {
	Payload  json.RawMessage `json:"payload"`
	StoredAt time.Time       `json:"stored_at"`
}

// Fetcher reads values of type D through a Cache, falling back to a
// loader, and reports every outcome as a result.Result[D].
//
// A Fetcher is immutable after construction and safe for concurrent use
// whenever its Cache is.
type Fetcher[D any] struct {
	cache     Cache
	freshFor  time.Duration
	retainFor time.Duration
	now       func() time.Time
}

// NewFetcher creates a Fetcher over cache. freshFor is how long an entry
// is served without consulting the loader; retainFor is how long the entry
// is kept for the stale-data path. Non-positive arguments fall back to the
// package defaults, and retention is raised to at least the freshness
// window.
func NewFetcher[D any](cache Cache, freshFor, retainFor time.Duration) *Fetcher[D] {
	if freshFor <= 0 {
		freshFor = DefaultFreshFor
	}
	if retainFor <= 0 {
		retainFor = DefaultRetainFor
	}
	if retainFor < freshFor {
		retainFor = freshFor
	}
	return &Fetcher[D]{
		cache:     cache,
		freshFor:  freshFor,
		retainFor: retainFor,
		now:       time.Now,
	}
}

// Lookup inspects only the cache. It returns:
//
//   - Idle when the key is cold (no operation has produced data yet)
//   - Success when a fresh entry exists
//   - Loading carrying the stale payload when the entry has outlived its
//     freshness window (a refresh is due; the stale value remains usable)
//   - Failure when the cache itself fails or holds a corrupt entry
func (f *Fetcher[D]) Lookup(ctx context.Context, key string) result.Result[D] {
	data, found, fresh, err := f.peek(ctx, key)
	switch {
	case err != nil:
		return result.Failure[D](faults.FromError(err))
	case !found:
		return result.Idle[D]()
	case fresh:
		return result.Success(data)
	default:
		return result.WrapAsLoading(data)
	}
}

// Fetch returns the value for key, consulting the cache first. A fresh
// entry is served as Success without invoking load. Otherwise load runs;
// on success the cache is refreshed and the value returned as Success, and
// on failure the result is a Failure that carries the stale cached payload
// when one survives, so consumers can keep showing the last known value.
//
// Cache write failures during refresh are deliberately not surfaced: the
// loaded value is correct whether or not it could be stored.
func (f *Fetcher[D]) Fetch(ctx context.Context, key string, load Loader[D]) result.Result[D] {
	stale, found, fresh, err := f.peek(ctx, key)
	if err == nil && found && fresh {
		return result.Success(stale)
	}

	data, loadErr := load(ctx)
	if loadErr != nil {
		reason := faults.FromError(loadErr)
		if err == nil && found {
			return result.WrapAsFailure(reason, stale)
		}
		return result.Failure[D](reason)
	}

	f.store(ctx, key, data)
	return result.Success(data)
}

// Invalidate removes keys from the cache so the next Fetch consults the
// loader.
func (f *Fetcher[D]) Invalidate(ctx context.Context, keys ...string) error {
	return f.cache.Delete(ctx, keys...)
}

// peek reads and decodes the cache entry for key, reporting whether it was
// found and whether it is still fresh.
func (f *Fetcher[D]) peek(ctx context.Context, key string) (data D, found, fresh bool, err error) {
	var zero D

	raw, ok, err := f.cache.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, false, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return zero, false, false, faults.Wrap(err, faults.CodeWrapped,
			"fetch: cache entry is not a valid envelope")
	}
	if err := json.Unmarshal(env.Payload, &data); err != nil {
		return zero, false, false, faults.Wrap(err, faults.CodeWrapped,
			"fetch: cached payload does not decode")
	}

	age := f.now().Sub(env.StoredAt)
	return data, true, age <= f.freshFor, nil
}

// store writes data to the cache inside a timestamped envelope. Failures
// are swallowed; the cache is an optimization, not a source of truth.
func (f *Fetcher[D]) store(ctx context.Context, key string, data D) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	env, err := json.Marshal(envelope{Payload: payload, StoredAt: f.now()})
	if err != nil {
		return
	}
	_ = f.cache.Set(ctx, key, string(env), f.retainFor)
}
