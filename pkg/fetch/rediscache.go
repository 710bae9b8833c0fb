package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
)

// tracerName is the OpenTelemetry instrumentation scope name for this
// package. It follows the Go module path convention for OTel
// instrumentation libraries.
const tracerName = "github.com/LoadstoneSoft/loadstone-core/pkg/fetch"

// Cmdable defines the narrow set of Redis operations the cache needs. It
// is satisfied by *redis.Client and by mock implementations for unit
// testing, enabling dependency injection via NewFromClient without a real
// Redis instance.
type Cmdable interface {
	// Get returns the string value of a key.
	Get(ctx context.Context, key string) *redis.StringCmd

	// Set sets the string value of a key with an optional expiration.
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd

	// Del deletes one or more keys.
	Del(ctx context.Context, keys ...string) *redis.IntCmd

	// Ping pings the Redis server.
	Ping(ctx context.Context) *redis.StatusCmd

	// Close closes the client connection.
	Close() error
}

// Compile-time interface compliance check. This ensures that *redis.Client
// satisfies the Cmdable interface at compile time rather than at runtime.
var _ Cmdable = (*redis.Client)(nil)

// RedisCache is a Cache backed by Redis, with OpenTelemetry tracing and
// coded fault classification on every operation.
//
// A RedisCache is safe for concurrent use by multiple goroutines. Create
// one with NewRedisCache for production use, or NewFromClient for testing
// with a mock.
type RedisCache struct {
	cmdable Cmdable
	tracer  trace.Tracer
	dbIndex int
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache creates a redis-backed cache. It validates the
// configuration, dials the server, and verifies connectivity with a ping.
//
// The caller must call Close when the cache is no longer needed.
//
// Fault codes returned:
//   - faults.CodeConfig: invalid configuration
//   - faults.CodeNetworkUnavailable: cannot connect to the server
func NewRedisCache(ctx context.Context, cfg Config) (*RedisCache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password.Value(),
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, faults.Wrap(err, faults.CodeNetworkUnavailable,
			"fetch: failed to connect to cache")
	}

	return &RedisCache{
		cmdable: rdb,
		tracer:  otel.Tracer(tracerName),
		dbIndex: cfg.DB,
	}, nil
}

// NewFromClient creates a RedisCache with a pre-existing Cmdable. This
// constructor is intended for testing with mock implementations.
//
// Example (testing):
//
//	mock := &mockCmdable{}
//	cache := fetch.NewFromClient(mock, 0)
func NewFromClient(cmdable Cmdable, dbIndex int) *RedisCache {
	return &RedisCache{
		cmdable: cmdable,
		tracer:  otel.Tracer(tracerName),
		dbIndex: dbIndex,
	}
}

// Get returns the value stored at key. The second return value is false
// when the key does not exist; this is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, span := c.startSpan(ctx, "Get", fmt.Sprintf("GET %s", key))
	val, err := c.cmdable.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		finishSpan(span, nil)
		return "", false, nil
	}
	finishSpan(span, err)
	if err != nil {
		return "", false, wrapCacheError(err, "fetch: cache get failed")
	}
	return val, true, nil
}

// Set stores value at key with the given time-to-live. A zero ttl stores
// the entry without expiration.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, span := c.startSpan(ctx, "Set", fmt.Sprintf("SET %s", key))
	err := c.cmdable.Set(ctx, key, value, ttl).Err()
	finishSpan(span, err)
	if err != nil {
		return wrapCacheError(err, "fetch: cache set failed")
	}
	return nil
}

// Delete removes one or more keys. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	ctx, span := c.startSpan(ctx, "Delete", fmt.Sprintf("DEL %v", keys))
	err := c.cmdable.Del(ctx, keys...).Err()
	finishSpan(span, err)
	if err != nil {
		return wrapCacheError(err, "fetch: cache delete failed")
	}
	return nil
}

// Ping verifies that the cache connection is alive. Returns nil if the
// server is reachable, or a *faults.Fault with code
// faults.CodeNetworkUnavailable otherwise.
func (c *RedisCache) Ping(ctx context.Context) error {
	ctx, span := c.startSpan(ctx, "Ping", "PING")
	err := c.cmdable.Ping(ctx).Err()
	finishSpan(span, err)
	if err != nil {
		return faults.Wrap(err, faults.CodeNetworkUnavailable,
			"fetch: cache ping failed")
	}
	return nil
}

// Close releases all connection resources. After Close is called, the
// cache must not be used.
func (c *RedisCache) Close() error {
	return c.cmdable.Close()
}

// startSpan creates a new OpenTelemetry span with standard database
// semantic attributes, following the OpenTelemetry semantic conventions
// for database client spans.
func (c *RedisCache) startSpan(ctx context.Context, operationName, statement string) (context.Context, trace.Span) {
	ctx, span := c.tracer.Start(ctx, "cache."+operationName,
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		attribute.String("db.system", "redis"),
		attribute.Int("db.redis.database_index", c.dbIndex),
		attribute.String("db.statement", truncateStatement(statement)),
	)
	return ctx, span
}

// finishSpan records an error on the span (if any) and ends it. If err is
// nil, the span status is set to OK.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// wrapCacheError converts a cache transport error to a coded fault.
// context.DeadlineExceeded is classified as a request timeout so callers
// can distinguish it from the server being down; everything else maps to
// the unavailable code.
func wrapCacheError(err error, message string) *faults.Fault {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return faults.Wrap(err, faults.CodeNetworkRequestTimeout, message)
	}
	return faults.Wrap(err, faults.CodeNetworkUnavailable, message)
}
