package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// testValkey connects to a local Valkey instance, skipping the test if
// it is unavailable.
func testValkey(t *testing.T) *SnapshotCache {
	t.Helper()

	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}

	client, err := ConnectValkey(host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping integration test: valkey not reachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return NewSnapshotCache(client, time.Minute)
}

func TestSnapshotCacheRoundtrip(t *testing.T) {
	sc := testValkey(t)
	ctx := context.Background()

	slug := "cache-test-site"
	sc.Invalidate(ctx, slug)

	if _, ok := sc.Get(ctx, slug); ok {
		t.Fatal("expected miss before set")
	}

	payload := []byte(`{"site":{"slug":"cache-test-site"}}`)
	sc.Set(ctx, slug, payload)

	got, ok := sc.Get(ctx, slug)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != string(payload) {
		t.Errorf("expected %s, got %s", payload, got)
	}

	sc.Invalidate(ctx, slug)
	if _, ok := sc.Get(ctx, slug); ok {
		t.Error("expected miss after invalidate")
	}
}
