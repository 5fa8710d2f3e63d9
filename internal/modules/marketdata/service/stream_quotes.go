package service

import (
	"context"
	"log"
	"time"

	"intraday_bot/internal/models"

	"github.com/bytedance/sonic"
)

// StreamQuotes держит WS-подписку на котировки и обновляет кэш последних
// bid/ask. Реконнект с паузой, keepalive ping — иначе апстрим рвёт
// соединение по таймауту.
func (c *Client) StreamQuotes(ctx context.Context, symbols []string) {
	if len(symbols) == 0 {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		log.Printf("[WS] quotes connect, %d symbols", len(symbols))
		conn, _, err := c.wsDialer.Dial(c.cfg.MarketData.WSURL, nil)
		if err != nil {
			log.Printf("[WS] quotes dial error: %v", err)
			time.Sleep(time.Second)
			continue
		}

		sub := map[string]any{
			"op":   "subscribe",
			"args": symbols,
		}
		if err := conn.WriteJSON(sub); err != nil {
			log.Printf("[WS] quotes subscribe error: %v", err)
			_ = conn.Close()
			continue
		}

		stopPing := make(chan struct{})
		go func() {
			t := time.NewTicker(20 * time.Second)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-stopPing:
					return
				case <-t.C:
					_ = conn.WriteJSON(map[string]string{"op": "ping"})
				}
			}
		}()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Printf("[WS] quotes read error: %v", err)
				close(stopPing)
				_ = conn.Close()
				break
			}

			var frame quoteFrame
			if err := sonic.Unmarshal(msg, &frame); err != nil {
				continue
			}
			if frame.Event != "quote" || frame.Symbol == "" || frame.Ask <= 0 {
				continue
			}

			c.quoteMu.Lock()
			c.quotes[frame.Symbol] = models.Quote{Ask: frame.Ask, Bid: frame.Bid}
			c.quoteMu.Unlock()
		}

		select {
		case <-ctx.Done():
			return
		default:
			time.Sleep(time.Second)
		}
	}
}
