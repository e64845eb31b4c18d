package gameday

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/diamondstats/gameday/internal/platform/logging"
	"github.com/diamondstats/gameday/internal/platform/resilience"
)

const (
	defaultBaseURL = "http://gd2.mlb.com/components/game/mlb"
	inningsSuffix  = "/inning/inning_all.xml"

	maxBodyBytes = 8 << 20
)

// ErrNotPublished marks a detail document the host has not published yet.
// Callers skip the game; it is a timing signal, not a failure.
var ErrNotPublished = crerr.New("game detail document not yet published")

// ErrHostUnavailable marks requests rejected by the circuit breaker.
var ErrHostUnavailable = crerr.New("gameday host is temporarily unavailable")

var dayLinkRegex = regexp.MustCompile(`href="(gid_\d{4}_\d{2}_\d{2}_\w{6}_\w{6}_\d)`)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches day index pages and per-game inning documents.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// DayGameLinks fetches the index resource for one day and returns every game
// document location it references, in index order. Any fetch failure,
// including a non-2xx status, is an error for the day: the caller must be
// able to tell "no games" apart from "could not discover games".
func (c *Client) DayGameLinks(ctx context.Context, day time.Time) ([]string, error) {
	dayURL := c.baseURL + "/" + DayPath(day)

	body, status, err := c.get(ctx, dayURL)
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch day index %s", DayPath(day))
	}
	if status < 200 || status >= 300 {
		return nil, crerr.Newf("day index %s returned status %d", DayPath(day), status)
	}

	matches := dayLinkRegex.FindAllStringSubmatch(string(body), -1)
	links := make([]string, 0, len(matches))
	for _, match := range matches {
		links = append(links, dayURL+"/"+match[1])
	}

	c.logger.DebugContext(ctx, "day index scanned", "day", DayPath(day), "games", len(links))
	return links, nil
}

// FetchInnings retrieves the inning-level detail document for one game link.
// A non-2xx status returns ErrNotPublished; other transport failures are real
// errors, so the two can be retried differently. The returned bytes have the
// stray U+00ED artifact stripped and are ready for XML parsing.
func (c *Client) FetchInnings(ctx context.Context, gameLink string) ([]byte, error) {
	body, status, err := c.get(ctx, gameLink+inningsSuffix)
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch innings for %s", gameLink)
	}
	if status < 200 || status >= 300 {
		return nil, crerr.Wrapf(ErrNotPublished, "status %d for %s", status, gameLink)
	}

	return scrubDocument(body), nil
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, int, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "circuit breaker rejected gameday request", "state", c.breaker.State())
			return nil, 0, ErrHostUnavailable
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, crerr.Wrap(err, "build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.circuitEnabled {
			c.breaker.RecordFailure()
		}
		return nil, 0, crerr.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if c.circuitEnabled {
			c.breaker.RecordFailure()
		}
		return nil, 0, crerr.Wrap(err, "read response body")
	}

	if c.circuitEnabled {
		c.breaker.RecordSuccess()
	}
	return body, resp.StatusCode, nil
}

// scrubDocument removes the U+00ED artifact some documents carry; the rest of
// the body is interpreted as UTF-8 by the XML decoder.
func scrubDocument(body []byte) []byte {
	return []byte(strings.ReplaceAll(string(body), "í", ""))
}
