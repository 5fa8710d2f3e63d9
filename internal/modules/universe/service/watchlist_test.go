package service

import (
	"os"
	"path/filepath"
	"testing"

	"intraday_bot/internal/modules/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWatchlist(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cfg := &config.Config{WatchlistFile: path}
	return cfg
}

func TestNewWatchlist(t *testing.T) {
	cfg := writeWatchlist(t, "symbols:\n  - AAPL\n  - MSFT\n  - NVDA\n")

	wl, err := NewWatchlist(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, wl.ListTradableSymbols())
}

func TestListReturnsCopy(t *testing.T) {
	cfg := writeWatchlist(t, "symbols:\n  - AAPL\n  - MSFT\n")

	wl, err := NewWatchlist(cfg)
	require.NoError(t, err)

	first := wl.ListTradableSymbols()
	first[0] = "MUTATED"
	assert.Equal(t, []string{"AAPL", "MSFT"}, wl.ListTradableSymbols())
}

func TestEmptyWatchlist(t *testing.T) {
	cfg := writeWatchlist(t, "symbols: []\n")
	_, err := NewWatchlist(cfg)
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	cfg := &config.Config{WatchlistFile: "no/such/file.yaml"}
	_, err := NewWatchlist(cfg)
	require.Error(t, err)
}
