package service

import (
	"testing"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvaluator(t *testing.T, patterns ...string) *Evaluator {
	t.Helper()
	if len(patterns) == 0 {
		patterns = []string{"hammer", "bullish_engulfing", "marubozu", "three_bar_play"}
	}
	cfg := &config.Config{}
	cfg.Trading.Patterns = patterns
	cfg.Trading.VWAPTolerancePct = 0.005
	ev, err := NewEvaluator(cfg)
	require.NoError(t, err)
	return ev
}

// hammerWindow — три свечи, последняя молот, объём выше среднего.
func hammerWindow(lastVolume float64) []models.Candle {
	return []models.Candle{
		{Open: 10, High: 10.5, Low: 9.9, Close: 10.4, Volume: 100},
		{Open: 10.4, High: 10.6, Low: 10.2, Close: 10.3, Volume: 120},
		{Open: 10.02, High: 10.07, Low: 9.5, Close: 10.06, Volume: lastVolume},
	}
}

func TestEvaluateMatch(t *testing.T) {
	ev := testEvaluator(t)

	pattern, ok, err := ev.Evaluate("AAPL", hammerWindow(200), 10.06, 10.06)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Hammer", pattern)
}

func TestEvaluateNoPattern(t *testing.T) {
	ev := testEvaluator(t)

	flat := []models.Candle{
		{Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 100},
		{Open: 10.5, High: 11, Low: 10, Close: 10.6, Volume: 100},
		{Open: 10.6, High: 11.2, Low: 10.1, Close: 10.7, Volume: 100},
	}
	_, ok, err := ev.Evaluate("AAPL", flat, 10.7, 10.7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateVWAPBoundaryInclusive(t *testing.T) {
	ev := testEvaluator(t)

	// дистанция ровно на границе 0.5% — проходит
	_, ok, err := ev.Evaluate("AAPL", hammerWindow(200), 100.5, 100.0)
	require.NoError(t, err)
	assert.True(t, ok)

	// чуть дальше — нет
	_, ok, err = ev.Evaluate("AAPL", hammerWindow(200), 100.51, 100.0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateVolumeFilter(t *testing.T) {
	ev := testEvaluator(t)

	// ниже среднего (110) — отбой
	_, ok, err := ev.Evaluate("AAPL", hammerWindow(100), 10.06, 10.06)
	require.NoError(t, err)
	assert.False(t, ok)

	// ровно на среднем — проходит
	_, ok, err = ev.Evaluate("AAPL", hammerWindow(110), 10.06, 10.06)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluateShortWindow(t *testing.T) {
	ev := testEvaluator(t)

	_, ok, err := ev.Evaluate("AAPL", hammerWindow(200)[:2], 10.06, 10.06)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluateInvalidInputs(t *testing.T) {
	ev := testEvaluator(t)

	_, _, err := ev.Evaluate("AAPL", hammerWindow(200), 0, 10.06)
	require.Error(t, err)

	_, _, err = ev.Evaluate("AAPL", hammerWindow(200), 10.06, 0)
	require.Error(t, err)

	bad := hammerWindow(200)
	bad[1].Volume = -5
	_, _, err = ev.Evaluate("AAPL", bad, 10.06, 10.06)
	require.Error(t, err)
}

func TestEvaluatePriorityOrder(t *testing.T) {
	// Марубозу, которая одновременно и почти-энгалфинг: порядок из конфига решает.
	prev := models.Candle{Open: 10.5, High: 10.6, Low: 10.1, Close: 10.2, Volume: 100}
	cur := models.Candle{Open: 10.1, High: 10.72, Low: 10.09, Close: 10.7, Volume: 200}
	w := []models.Candle{{Open: 10, High: 10.6, Low: 9.9, Close: 10.5, Volume: 100}, prev, cur}

	ev := testEvaluator(t, "bullish_engulfing", "marubozu")
	pattern, ok, err := ev.Evaluate("AAPL", w, 10.7, 10.7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Bullish Engulfing", pattern)

	ev = testEvaluator(t, "marubozu", "bullish_engulfing")
	pattern, ok, err = ev.Evaluate("AAPL", w, 10.7, 10.7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Marubozu", pattern)
}

func TestUnknownPattern(t *testing.T) {
	cfg := &config.Config{}
	cfg.Trading.Patterns = []string{"head_and_shoulders"}
	_, err := NewEvaluator(cfg)
	require.Error(t, err)
}
