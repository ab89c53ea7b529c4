package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func newServer(t *testing.T, status int, respBody string, got *captured) *Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(ts.Close)
	return NewClient(ts.URL+"/", time.Second)
}

func TestAdminDeleteUser_Success(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusOK, `{"success":true}`, &got)
	c.SetToken("  tok  ")

	res, err := c.AdminDeleteUser(context.Background(), "t-1", "ola")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/functions/v1/admin-delete-user", got.path)
	assert.Equal(t, "Bearer tok", got.auth)
	assert.Equal(t, map[string]any{"targetUserId": "t-1", "expectedUsername": "ola"}, got.body)
}

func TestAdminDeleteUser_TypedError(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusConflict, `{"success":false,"error":"username_mismatch"}`, &got)

	res, err := c.AdminDeleteUser(context.Background(), "t-1", "kari")

	assert.Nil(t, res)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "username_mismatch", apiErr.Code)
	assert.Equal(t, "http 409: username_mismatch", apiErr.Error())
	assert.Empty(t, got.auth, "no token, no header")
}

func TestDeleteAccount_MessageError(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusInternalServerError, `{"error":"Database error deleting user"}`, &got)
	c.SetToken("tok")

	_, err := c.DeleteAccount(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Database error deleting user", apiErr.Code)
	assert.Equal(t, "/functions/v1/delete-account", got.path)
}

func TestReportActivity(t *testing.T) {
	t.Run("with coordinates", func(t *testing.T) {
		var got captured
		c := newServer(t, http.StatusOK, `{"success":true}`, &got)
		_, err := c.ReportActivity(context.Background(), &Coordinates{Latitude: 59.9, Longitude: 10.7})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"latitude": 59.9, "longitude": 10.7}, got.body)
	})

	t.Run("without coordinates", func(t *testing.T) {
		var got captured
		c := newServer(t, http.StatusOK, `{"success":true}`, &got)
		_, err := c.ReportActivity(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, got.body)
	})
}

func TestStatus(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusOK, `{"ok":true,"overall":{"indicator":"minor","description":"Minor outage"},"mappedStatus":"degraded",
		"components":[{"id":"c","name":"API","status":"degraded_performance"}],
		"incidents":[{"id":"i","name":"Slow API","status":"investigating","started_at":"2026-10-19T09:00:00Z","url":"https://stspg.io/x"}]}`, &got)

	s, err := c.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, &PlatformStatus{
		OK:           true,
		Overall:      StatusOverall{Indicator: "minor", Description: "Minor outage"},
		MappedStatus: "degraded",
		Components:   []StatusComponent{{ID: "c", Name: "API", Status: "degraded_performance"}},
		Incidents: []StatusIncident{{
			ID: "i", Name: "Slow API", Status: "investigating",
			StartedAt: "2026-10-19T09:00:00Z", URL: "https://stspg.io/x",
		}},
	}, s)
}

func TestStatus_MalformedBody(t *testing.T) {
	var got captured
	c := newServer(t, http.StatusOK, `<html>`, &got)

	_, err := c.Status(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestError_NoCode(t *testing.T) {
	assert.Equal(t, "http 502", (&Error{Status: 502}).Error())
}

func TestHasToken(t *testing.T) {
	c := NewClient("http://x", time.Second)
	assert.False(t, c.HasToken())
	c.SetToken("   ")
	assert.False(t, c.HasToken())
	c.SetToken("abc")
	assert.True(t, c.HasToken())
}
