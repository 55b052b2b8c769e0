package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daiki-beppu/ui-gohan/internal/common"
	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

func TestHTTPClient_Sync_RoundTrip(t *testing.T) {
	var gotAuth string
	var gotReq syncapi.SyncRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, common.SyncPath, r.URL.Path)
		gotAuth = r.Header.Get(common.AuthHeaderName)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(syncapi.SyncResponse{
			ServerTime: 4242,
			Menus:      []syncapi.Menu{{ID: "remote1", MealType: "dinner", DishName: "おでん"}},
		})
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "token-1", time.Second)
	t.Cleanup(func() { _ = c.Close() })

	resp, err := c.Sync(context.Background(), &syncapi.SyncRequest{Since: 7})
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, int64(7), gotReq.Since)
	assert.Equal(t, int64(4242), resp.ServerTime)
	require.Len(t, resp.Menus, 1)
	assert.Equal(t, "remote1", resp.Menus[0].ID)
}

func TestHTTPClient_Sync_MapsStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusInternalServerError, ErrUnavailable},
		{http.StatusBadGateway, ErrUnavailable},
	}

	for _, tc := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		c := NewHTTPClient(srv.URL, "", time.Second)
		_, err := c.Sync(context.Background(), &syncapi.SyncRequest{})
		assert.True(t, errors.Is(err, tc.want), "status %d must map to %v, got %v", tc.status, tc.want, err)

		srv.Close()
	}
}

func TestHTTPClient_Sync_ConnectionRefused(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", "", 200*time.Millisecond)

	_, err := c.Sync(context.Background(), &syncapi.SyncRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestHTTPClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "", time.Second)
	require.NoError(t, c.Ping(context.Background()))
}
