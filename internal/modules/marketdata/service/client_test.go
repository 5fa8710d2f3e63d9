package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	cfg := &config.Config{}
	cfg.MarketData.BaseURL = srv.URL
	cfg.MarketData.APIKey = "test-key"
	cfg.MarketData.RequestTimeout = 5 * time.Second
	return NewClient(cfg), srv
}

func TestGetQuote(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/quote/AAPL", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"status":"ok","symbol":"AAPL","ask":187.45,"bid":187.41}`))
	}))
	defer srv.Close()

	q, err := c.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 187.45, q.Ask)
	assert.Equal(t, 187.41, q.Bid)
}

func TestGetQuoteUnavailable(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"no_data","symbol":"AAPL"}`))
	}))
	defer srv.Close()

	_, err := c.GetQuote(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestGetQuoteServerError(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := c.GetQuote(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestGetRecentCandles(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/candles/AAPL", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"status":"ok","symbol":"AAPL","results":[
			{"o":186.0,"h":186.5,"l":185.8,"c":186.4,"v":12000,"t":1767110400000},
			{"o":186.4,"h":186.9,"l":186.2,"c":186.8,"v":15000,"t":1767110460000}
		]}`))
	}))
	defer srv.Close()

	candles, err := c.GetRecentCandles(context.Background(), "AAPL", 5)
	require.NoError(t, err)
	require.Len(t, candles, 2)
	assert.Equal(t, 186.0, candles[0].Open)
	assert.Equal(t, 15000.0, candles[1].Volume)
	assert.Equal(t, time.UnixMilli(1767110400000), candles[0].Start)
}

func TestGetVWAP(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/vwap/AAPL", r.URL.Path)
		assert.Equal(t, "14", r.URL.Query().Get("window"))
		_, _ = w.Write([]byte(`{"status":"ok","symbol":"AAPL","vwap":186.52}`))
	}))
	defer srv.Close()

	vwap, err := c.GetVWAP(context.Background(), "AAPL", 14)
	require.NoError(t, err)
	assert.Equal(t, 186.52, vwap)
}

func TestRequestPacing(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","symbol":"AAPL","ask":1,"bid":1}`))
	}))
	defer srv.Close()
	c.cfg.MarketData.RequestInterval = 30 * time.Millisecond

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := c.GetQuote(context.Background(), "AAPL")
		require.NoError(t, err)
	}
	// три запроса — минимум два полных интервала между ними
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestWSCacheServesQuote(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("REST не должен вызываться при тёплом кэше")
	}))
	defer srv.Close()
	c.cfg.MarketData.WSEnabled = true

	c.quoteMu.Lock()
	c.quotes["AAPL"] = models.Quote{Ask: 187.45, Bid: 187.41}
	c.quoteMu.Unlock()

	q, err := c.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 187.45, q.Ask)
}
