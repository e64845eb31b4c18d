package gameday

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diamondstats/gameday/internal/platform/resilience"
)

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		BaseURL:    baseURL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})
}

func TestDayGameLinks_ExtractsInIndexOrder(t *testing.T) {
	index := `<html><body>
	<a href="gid_2015_04_06_nyamlb_wasmlb_1/">link</a>
	<a href="gid_2015_04_06_bosmlb_phimlb_1/">link</a>
	<a href="not_a_game/">link</a>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/year_2015/month_04/day_06" {
			t.Errorf("unexpected index path: %s", r.URL.Path)
		}
		fmt.Fprint(w, index)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	links, err := client.DayGameLinks(context.Background(), time.Date(2015, time.April, 6, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("day game links: %v", err)
	}

	if len(links) != 2 {
		t.Fatalf("unexpected link count: %d", len(links))
	}
	if !strings.HasSuffix(links[0], "/gid_2015_04_06_nyamlb_wasmlb_1") {
		t.Fatalf("unexpected first link: %s", links[0])
	}
	if !strings.HasSuffix(links[1], "/gid_2015_04_06_bosmlb_phimlb_1") {
		t.Fatalf("unexpected second link: %s", links[1])
	}
}

func TestDayGameLinks_NonSuccessIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.DayGameLinks(context.Background(), time.Date(2015, time.April, 6, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error for non-success day index status")
	}
}

func TestFetchInnings_NotPublished(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchInnings(context.Background(), server.URL+"/gid_2015_04_06_nyamlb_wasmlb_1")
	if !errors.Is(err, ErrNotPublished) {
		t.Fatalf("expected ErrNotPublished, got %v", err)
	}
}

func TestFetchInnings_StripsArtifactAndHitsDetailPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/inning/inning_all.xml") {
			t.Errorf("unexpected detail path: %s", r.URL.Path)
		}
		fmt.Fprint(w, "<game><inning num=\"1\"></inning></game>í")
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	body, err := client.FetchInnings(context.Background(), server.URL+"/gid_2015_04_06_nyamlb_wasmlb_1")
	if err != nil {
		t.Fatalf("fetch innings: %v", err)
	}
	if strings.Contains(string(body), "í") {
		t.Fatal("artifact was not stripped from body")
	}
}

func TestFetchInnings_TransportFailureIsNotNotPublished(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server.URL)
	_, err := client.FetchInnings(context.Background(), server.URL+"/gid_2015_04_06_nyamlb_wasmlb_1")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if errors.Is(err, ErrNotPublished) {
		t.Fatal("transport failure must not look like not-yet-published")
	}
}

func TestClient_CircuitBreakerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{
		HTTPClient: &http.Client{Timeout: time.Second},
		BaseURL:    server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	day := time.Date(2015, time.April, 6, 0, 0, 0, 0, time.UTC)
	if _, err := client.DayGameLinks(context.Background(), day); err == nil {
		t.Fatal("expected first request to fail")
	}
	_, err := client.DayGameLinks(context.Background(), day)
	if !errors.Is(err, ErrHostUnavailable) {
		t.Fatalf("expected ErrHostUnavailable from open breaker, got %v", err)
	}
}
