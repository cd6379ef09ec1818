package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Timeline.MapsBaseURL != "https://www.google.com/maps" {
		t.Errorf("unexpected maps base: %q", cfg.Timeline.MapsBaseURL)
	}
	if cfg.Timeline.GuidePathPrefix != "/museum/" {
		t.Errorf("unexpected guide prefix: %q", cfg.Timeline.GuidePathPrefix)
	}
	if cfg.Timeline.RenderCacheTTL != 24*time.Hour {
		t.Errorf("unexpected ttl: %v", cfg.Timeline.RenderCacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BOOKING_URL", "https://tickets.example.test")
	t.Setenv("RENDER_CACHE_TTL", "5m")
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected 9090, got %q", cfg.Port)
	}
	if cfg.Timeline.BookingURL != "https://tickets.example.test" {
		t.Errorf("unexpected booking url: %q", cfg.Timeline.BookingURL)
	}
	if cfg.Timeline.RenderCacheTTL != 5*time.Minute {
		t.Errorf("unexpected ttl: %v", cfg.Timeline.RenderCacheTTL)
	}
	if cfg.IsDevelopment() {
		t.Error("expected production env")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("RENDER_CACHE_TTL", "soon")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
