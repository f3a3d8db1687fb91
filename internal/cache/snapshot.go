// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// snapshot.go provides a Valkey-backed cache of published site snapshots.
// The public serving path reads the snapshot JSON from Valkey before
// falling back to PostgreSQL; publishing and unpublishing invalidate the
// entry so stale snapshots are never served past a publish.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// snapshotKeyPrefix is the Valkey key prefix for cached snapshots.
	snapshotKeyPrefix = "snapshot:"

	// DefaultSnapshotTTL bounds how long a snapshot stays cached. The
	// publish path invalidates eagerly; the TTL only covers missed
	// invalidations.
	DefaultSnapshotTTL = 10 * time.Minute
)

// SnapshotCache caches published snapshot JSON keyed by site slug.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a snapshot cache backed by the given Valkey client.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl == 0 {
		ttl = DefaultSnapshotTTL
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get retrieves the cached snapshot for a site slug. Returns false on miss.
func (sc *SnapshotCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, snapshotKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("snapshot cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("snapshot cache hit", "slug", slug)
	return val, true
}

// Set stores snapshot JSON for a site slug with the configured TTL.
func (sc *SnapshotCache) Set(ctx context.Context, slug string, snapshot []byte) {
	if err := sc.client.Set(ctx, snapshotKeyPrefix+slug, snapshot, sc.ttl).Err(); err != nil {
		slog.Warn("snapshot cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a site's cached snapshot. Called on publish and
// unpublish so the public path always sees the current state.
func (sc *SnapshotCache) Invalidate(ctx context.Context, slug string) {
	if err := sc.client.Del(ctx, snapshotKeyPrefix+slug).Err(); err != nil {
		slog.Warn("snapshot cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("snapshot cache invalidated", "slug", slug)
}
