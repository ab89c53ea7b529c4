// Package geo resolves a public IP address to approximate coordinates.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/huddle/internal/common"
	"github.com/dmitrijs2005/huddle/internal/server/models"
)

// Locator looks up the location of an IP address.
type Locator interface {
	Locate(ctx context.Context, ip string) (*models.Location, error)
}

// DefaultTimeout bounds a single lookup.
const DefaultTimeout = 3 * time.Second

// HTTPLocator queries an ipapi.co compatible service:
//
//	GET {base}/{ip}/json/ -> {"latitude": 59.91, "longitude": 10.75, ...}
type HTTPLocator struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func NewHTTPLocator(baseURL string, timeout time.Duration, client *http.Client) *HTTPLocator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLocator{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  client,
	}
}

type ipapiResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

// Locate returns the coordinates for ip. Every failure, including a
// timeout, wraps common.ErrNoLocation.
func (l *HTTPLocator) Locate(ctx context.Context, ip string) (*models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s/json/", l.baseURL, url.PathEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNoLocation, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNoLocation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %s", common.ErrNoLocation, resp.Status)
	}

	var body ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", common.ErrNoLocation, err)
	}
	if body.Error {
		return nil, fmt.Errorf("%w: %s", common.ErrNoLocation, body.Reason)
	}
	if body.Latitude == nil || body.Longitude == nil {
		return nil, common.ErrNoLocation
	}

	return &models.Location{Latitude: *body.Latitude, Longitude: *body.Longitude}, nil
}
