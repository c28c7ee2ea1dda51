package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_snapshot/internal/app/config"
)

// setupEnv points the client at a counting fake server and isolates config sources.
func setupEnv(t *testing.T, apiKey string, handler http.HandlerFunc) *atomic.Int32 {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	t.Setenv(config.EnvAPIKey, apiKey)
	t.Setenv(config.EnvBaseURL, server.URL)
	t.Setenv(config.EnvTimeout, "")
	t.Setenv(config.EnvOutputPath, "")
	t.Setenv(config.EnvGranularity, "")
	t.Setenv(config.EnvLogLevel, "")
	return &calls
}

func TestRun_MissingAPIKeyMakesNoRequest(t *testing.T) {
	calls := setupEnv(t, "", func(w http.ResponseWriter, r *http.Request) {})
	out := filepath.Join(t.TempDir(), "test.json")
	var stdout bytes.Buffer

	err := newCommand(&stdout).Run(context.Background(), []string{"fetch", "--config", "", "--output", out})

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	assert.Equal(t, int32(0), calls.Load())
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_Success(t *testing.T) {
	calls := setupEnv(t, "key", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("function") {
		case "TOP_GAINERS_LOSERS":
			_, _ = w.Write([]byte(`{"most_actively_traded":[{"ticker":"ABC"}]}`))
		case "TIME_SERIES_DAILY":
			if r.URL.Query().Has("interval") {
				t.Error("daily request must not carry an interval")
			}
			_, _ = w.Write([]byte(`{"Time Series (Daily)":{}}`))
		default:
			t.Errorf("unexpected function %q", r.URL.Query().Get("function"))
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	out := filepath.Join(t.TempDir(), "test.json")
	var stdout bytes.Buffer

	err := newCommand(&stdout).Run(context.Background(),
		[]string{"fetch", "--config", "", "--output", out, "--granularity", "daily"})

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"active_stocks":{"most_actively_traded":[{"ticker":"ABC"}]},"price_data":{"Time Series (Daily)":{}}}`, string(b))

	logs := stdout.String()
	assert.Contains(t, logs, "Fetching active stocks...")
	assert.Contains(t, logs, "Fetching price data for ABC...")
	assert.Contains(t, logs, "Results saved to")
	assert.NotContains(t, logs, "apikey=key")
}

func TestRun_NoActiveStocksIsNotAnError(t *testing.T) {
	calls := setupEnv(t, "key", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"most_actively_traded":[]}`))
	})
	out := filepath.Join(t.TempDir(), "test.json")
	var stdout bytes.Buffer

	err := newCommand(&stdout).Run(context.Background(), []string{"fetch", "--config", "", "--output", out})

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, stdout.String(), "Error getting active stocks")
	assert.Contains(t, stdout.String(), ".env not found", "dotenv notice goes through the configured logger")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_InvalidGranularityFlag(t *testing.T) {
	calls := setupEnv(t, "key", func(w http.ResponseWriter, r *http.Request) {})
	var stdout bytes.Buffer

	err := newCommand(&stdout).Run(context.Background(),
		[]string{"fetch", "--config", "", "--granularity", "weekly"})

	require.Error(t, err)
	assert.Equal(t, int32(0), calls.Load())
}
