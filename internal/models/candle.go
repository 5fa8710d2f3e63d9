package models

import "time"

// Candle — одна закрытая OHLCV-свеча фиксированного таймфрейма.
type Candle struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	Start  time.Time
}

// Body is the absolute open-to-close distance.
func (c Candle) Body() float64 {
	b := c.Close - c.Open
	if b < 0 {
		b = -b
	}
	return b
}

// Range is high-to-low. Zero for a flat candle.
func (c Candle) Range() float64 {
	return c.High - c.Low
}

// Bullish: close above open.
func (c Candle) Bullish() bool { return c.Close > c.Open }

// Bearish: close below open.
func (c Candle) Bearish() bool { return c.Close < c.Open }

// Quote — лучшие bid/ask на момент запроса. Ask используется как цена
// маркировки и для входа, и для выхода.
type Quote struct {
	Ask float64
	Bid float64
}
