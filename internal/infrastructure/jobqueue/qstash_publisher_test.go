package jobqueue

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeDelay(t *testing.T) {
	if got := normalizeDelay(0); got != "0s" {
		t.Fatalf("expected 0s for zero delay, got %s", got)
	}
	if got := normalizeDelay(-time.Second); got != "0s" {
		t.Fatalf("expected 0s for negative delay, got %s", got)
	}
	if got := normalizeDelay(90 * time.Second); got != "90s" {
		t.Fatalf("expected 90s, got %s", got)
	}
}

func TestValidateHTTPBaseURL(t *testing.T) {
	t.Run("accepts https and trims trailing slash", func(t *testing.T) {
		got, err := validateHTTPBaseURL("https://qstash.upstash.io/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "https://qstash.upstash.io" {
			t.Fatalf("unexpected base url: %s", got)
		}
	})

	t.Run("rejects empty value", func(t *testing.T) {
		if _, err := validateHTTPBaseURL("   "); err == nil {
			t.Fatalf("expected error for empty value")
		}
	})

	t.Run("rejects non-http scheme", func(t *testing.T) {
		if _, err := validateHTTPBaseURL("redis://qstash.upstash.io"); err == nil {
			t.Fatalf("expected error for unsupported scheme")
		}
	})
}

func TestBuildQStashCurlPreviewMasksSecrets(t *testing.T) {
	preview := buildQStashCurlPreview(
		"https://qstash.upstash.io/v2/publish/https://worker.internal/jobs/import-game",
		"/jobs/import-game",
		"0s",
		3,
		"gid_2011_07_02_nyamlb_wasmlb_1",
		`{"gid":"gid_2011_07_02_nyamlb_wasmlb_1"}`,
	)

	if strings.Contains(preview, "Bearer ey") {
		t.Fatalf("preview must not carry the real token: %s", preview)
	}
	if !strings.Contains(preview, "Authorization: Bearer ***") {
		t.Fatalf("expected masked authorization header in %s", preview)
	}
	if !strings.Contains(preview, "Upstash-Deduplication-Id: gid_2011_07_02_nyamlb_wasmlb_1") {
		t.Fatalf("expected deduplication header in %s", preview)
	}
	if !strings.Contains(preview, "Upstash-Retries: 3") {
		t.Fatalf("expected retries header in %s", preview)
	}
	if strings.Contains(preview, "Upstash-Delay") {
		t.Fatalf("zero delay must not emit a delay header: %s", preview)
	}
}
