package service

import "intraday_bot/internal/models"

// Window — входной срез свечей (старые -> новые) плюс VWAP за lookback.
type Window struct {
	Candles []models.Candle
	VWAP    float64
}

// Last возвращает n-ю свечу с конца: Last(0) — последняя.
func (w Window) Last(n int) models.Candle {
	return w.Candles[len(w.Candles)-1-n]
}

func (w Window) Len() int { return len(w.Candles) }

// Pattern — один свечной предикат входа.
type Pattern interface {
	Name() string
	Match(w Window) bool
}
