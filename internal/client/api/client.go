// Package api is a small typed client for the Huddle functions endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/huddle/internal/common"
)

const functionsPrefix = "/functions/v1"

// Result is the body of a successful workflow call.
type Result struct {
	Success bool `json:"success"`
}

// Error is a non-2xx answer from a function. Code holds the "error" field
// of the body; for delete-account that field is a free-text message.
type Error struct {
	Status int
	Code   string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d", e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Code)
}

// Coordinates are optional device coordinates sent with an activity report.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer token sent with privileged calls.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

func (c *Client) DeleteAccount(ctx context.Context) (*Result, error) {
	var r Result
	if err := c.call(ctx, http.MethodPost, "/delete-account", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, targetUserID, expectedUsername string) (*Result, error) {
	body := map[string]string{
		"targetUserId":     targetUserID,
		"expectedUsername": expectedUsername,
	}
	var r Result
	if err := c.call(ctx, http.MethodPost, "/admin-delete-user", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ReportActivity records an app open. With nil coords the server falls back
// to IP geolocation.
func (c *Client) ReportActivity(ctx context.Context, coords *Coordinates) (*Result, error) {
	var body any
	if coords != nil {
		body = coords
	}
	var r Result
	if err := c.call(ctx, http.MethodPost, "/report-app-activity", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) Status(ctx context.Context) (*PlatformStatus, error) {
	var s PlatformStatus
	if err := c.call(ctx, http.MethodGet, "/supabase-status", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+functionsPrefix+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &eb)
		return &Error{Status: resp.StatusCode, Code: eb.Error}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
