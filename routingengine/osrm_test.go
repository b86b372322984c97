package routingengine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSRMClient_Duration_ParsesRouteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"duration":123.5}]}`))
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL)
	d, err := c.Duration(context.Background(), Point{Lon: 0, Lat: 0}, Point{Lon: 1, Lat: 1})
	require.NoError(t, err)
	assert.Equal(t, 123500*time.Millisecond, d)
}

func TestOSRMClient_Duration_NoRouteIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL)
	_, err := c.Duration(context.Background(), Point{}, Point{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOSRMClient_Duration_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewOSRMClient(srv.URL)
	_, err := c.Duration(context.Background(), Point{}, Point{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
