package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "otasuke/internal/adapters/redis"
	"otasuke/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	in := domain.UserSettings{UserLocation: "指宿市", Transport: "自転車", AgeGroup: "80代"}
	if err := c.Set(ctx, "otasuke:settings:mother", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.UserSettings
	ok, err := c.Get(ctx, "otasuke:settings:mother", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.UserLocation != "指宿市" || out.Transport != "自転車" {
		t.Fatalf("unexpected value: %+v", out)
	}

	if err := c.Del(ctx, "otasuke:settings:mother"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "otasuke:settings:mother", &out)
	if err != nil || ok {
		t.Fatalf("expected miss after delete, ok=%v err=%v", ok, err)
	}
}

func TestCache_TTLAndNoExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "ttl-key", "v", 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("ttl-key"); ttl != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %v", ttl)
	}

	// ttl 0 persists the key
	if err := c.Set(ctx, "persist-key", "v", 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("persist-key"); ttl != 0 {
		t.Fatalf("expected no ttl, got %v", ttl)
	}
}
