package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// ErrUnavailable — данных по символу сейчас нет. Не фатально: символ
// пропускается в этом цикле.
var ErrUnavailable = errors.New("market data unavailable")

// Client — REST-клиент дата-провайдера с паузой между запросами
// (rate limit апстрима) и опциональным WS-кэшем последних котировок.
type Client struct {
	cfg      *config.Config
	http     *http.Client
	wsDialer *websocket.Dialer

	paceMu  sync.Mutex
	lastReq time.Time

	quoteMu sync.RWMutex
	quotes  map[string]models.Quote
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.MarketData.RequestTimeout},
		wsDialer: &websocket.Dialer{},
		quotes:   make(map[string]models.Quote),
	}
}

// pace выдерживает минимальный интервал между запросами к апстриму.
func (c *Client) pace() {
	c.paceMu.Lock()
	defer c.paceMu.Unlock()

	interval := c.cfg.MarketData.RequestInterval
	if interval <= 0 {
		return
	}
	if wait := interval - time.Since(c.lastReq); wait > 0 {
		time.Sleep(wait)
	}
	c.lastReq = time.Now()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	c.pace()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.MarketData.BaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.MarketData.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(ErrUnavailable, "do request %s: %v", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(ErrUnavailable, "read body %s: %v", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrUnavailable, "%s: status %d", path, resp.StatusCode)
	}

	if err := sonic.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// GetQuote — лучшие bid/ask. Сначала WS-кэш, потом REST.
func (c *Client) GetQuote(ctx context.Context, symbol string) (models.Quote, error) {
	if c.cfg.MarketData.WSEnabled {
		c.quoteMu.RLock()
		q, ok := c.quotes[symbol]
		c.quoteMu.RUnlock()
		if ok && q.Ask > 0 {
			return q, nil
		}
	}

	var r quoteResponse
	if err := c.get(ctx, "/v1/quote/"+symbol, &r); err != nil {
		return models.Quote{}, err
	}
	if r.Status != "ok" || r.Ask <= 0 {
		return models.Quote{}, errors.Wrapf(ErrUnavailable, "quote %s: status=%q ask=%v", symbol, r.Status, r.Ask)
	}
	return models.Quote{Ask: r.Ask, Bid: r.Bid}, nil
}

// GetRecentCandles — последние count закрытых свечей, старые -> новые.
func (c *Client) GetRecentCandles(ctx context.Context, symbol string, count int) ([]models.Candle, error) {
	var r candlesResponse
	path := fmt.Sprintf("/v1/candles/%s?limit=%d", symbol, count)
	if err := c.get(ctx, path, &r); err != nil {
		return nil, err
	}
	if r.Status != "ok" || len(r.Results) == 0 {
		return nil, errors.Wrapf(ErrUnavailable, "candles %s: status=%q n=%d", symbol, r.Status, len(r.Results))
	}

	out := make([]models.Candle, 0, len(r.Results))
	for _, row := range r.Results {
		out = append(out, models.Candle{
			Open:   row.Open,
			High:   row.High,
			Low:    row.Low,
			Close:  row.Close,
			Volume: row.Volume,
			Start:  time.UnixMilli(row.Ts),
		})
	}
	return out, nil
}

// GetVWAP — volume-weighted average price за window свечей.
func (c *Client) GetVWAP(ctx context.Context, symbol string, window int) (float64, error) {
	var r vwapResponse
	path := fmt.Sprintf("/v1/vwap/%s?window=%d", symbol, window)
	if err := c.get(ctx, path, &r); err != nil {
		return 0, err
	}
	if r.Status != "ok" || r.VWAP <= 0 {
		return 0, errors.Wrapf(ErrUnavailable, "vwap %s: status=%q vwap=%v", symbol, r.Status, r.VWAP)
	}
	return r.VWAP, nil
}
