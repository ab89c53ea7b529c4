package statuspage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/huddle/internal/logging"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a successful upstream read is served from cache.
const DefaultTTL = 60 * time.Second

// CacheControl is sent with every status response.
const CacheControl = "public, max-age=0, s-maxage=60, stale-while-revalidate=120"

// Service serves the normalized status, hitting the upstream only when the
// cache is empty or stale.
type Service struct {
	url    string
	ttl    time.Duration
	client *http.Client
	cache  Cache
	now    func() time.Time
	group  singleflight.Group
	logger logging.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.client = c }
}

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewService(url string, cache Cache, l logging.Logger, opts ...Option) *Service {
	s := &Service{
		url:    url,
		ttl:    DefaultTTL,
		client: http.DefaultClient,
		cache:  cache,
		now:    time.Now,
		logger: l.With("module", "statuspage"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Status returns the cached payload while it is fresh. Otherwise it reads
// the upstream; on success the result is cached for the TTL, on failure the
// fallback payload is returned and the cache is left as it was.
func (s *Service) Status(ctx context.Context) NormalizedStatus {
	if e, ok := s.cache.Get(); ok && e.Fresh(s.now()) {
		return e.Payload
	}

	v, err, _ := s.group.Do("status", func() (any, error) {
		// another caller may have refreshed the slot while we waited
		if e, ok := s.cache.Get(); ok && e.Fresh(s.now()) {
			return e.Payload, nil
		}

		// the fetch is shared by every waiter, so one caller going away must
		// not cancel it; the HTTP client timeout still bounds it
		payload, err := s.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.cache.Set(Entry{Payload: payload, ExpiresAt: s.now().Add(s.ttl)})
		return payload, nil
	})
	if err != nil {
		s.logger.Warn(ctx, "status upstream unavailable", "error", err)
		return Fallback()
	}

	return v.(NormalizedStatus)
}

func (s *Service) fetch(ctx context.Context) (NormalizedStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return NormalizedStatus{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return NormalizedStatus{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NormalizedStatus{}, fmt.Errorf("upstream status %s", resp.Status)
	}

	var summary upstreamSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return NormalizedStatus{}, fmt.Errorf("decode summary: %w", err)
	}

	return normalize(summary), nil
}
