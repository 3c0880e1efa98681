package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh-18a/artiflex/internal/config"
)

func TestLatestRatesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/test-key/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","conversion_rates":{"USD":1.0,"INR":83.12}}`))
	}))
	defer srv.Close()

	c := NewRatesClient(&config.Exchange{BaseApiURL: srv.URL, APIKey: "test-key"})

	rates, err := c.LatestRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 83.12, rates["INR"])
}

func TestLatestRatesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewRatesClient(&config.Exchange{BaseApiURL: srv.URL, APIKey: "test-key"})

	_, err := c.LatestRates(context.Background())
	assert.Error(t, err)
}

func TestLatestRatesNonSuccessResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error"}`))
	}))
	defer srv.Close()

	c := NewRatesClient(&config.Exchange{BaseApiURL: srv.URL, APIKey: "test-key"})

	_, err := c.LatestRates(context.Background())
	assert.Error(t, err)
}
