package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	reviewserrors "islatours/internal/reviews/errors"
	"islatours/pkg/model"
)

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	reviews := []model.Review{{Author: "Marta K", Rating: 5}}
	if err := c.Set(ctx, "k", reviews, time.Minute); err != nil {
		t.Fatal(err)
	}

	got, err := c.Get(ctx, "k")
	if err != nil || len(got) != 1 {
		t.Fatalf("expected cached reviews, got %v, %v", got, err)
	}

	now = now.Add(time.Minute)
	if _, err := c.Get(ctx, "k"); !errors.Is(err, reviewserrors.ErrCacheMiss) {
		t.Errorf("expected miss after ttl, got %v", err)
	}
}

func TestMemoryCache_SetPurgesExpired(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	c.Set(ctx, "old", nil, time.Second)
	now = now.Add(time.Hour)
	c.Set(ctx, "new", nil, time.Second)

	if len(c.entries) != 1 {
		t.Errorf("expected expired entry purged, have %d entries", len(c.entries))
	}
}

func TestKey_DependsOnLimit(t *testing.T) {
	if Key("https://a.test", 5) == Key("https://a.test", 10) {
		t.Error("keys must differ by limit")
	}
	if Key("https://a.test", 5) != Key("https://a.test", 5) {
		t.Error("keys must be stable")
	}
}
