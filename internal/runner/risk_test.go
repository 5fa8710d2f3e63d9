package runner

import (
	"testing"
	"time"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTradingConfig() config.TradingConfig {
	return config.TradingConfig{
		TradeInterval:    time.Minute,
		CandleCount:      5,
		MaxOpenPositions: 3,
		DailyLossCap:     -100,

		TrailArmPct:     0.01,
		TrailDropPct:    0.0075,
		BreakEvenArmPct: 0.008,
		CumLossPct:      0.0075,

		VWAPTolerancePct: 0.005,
		VWAPWindow:       14,
		Patterns:         []string{"hammer"},

		Session: config.SessionConfig{
			Open:     "09:30",
			Close:    "16:00",
			Timezone: "America/New_York",
		},
	}
}

func nyTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// вторник
	return time.Date(2026, 1, 6, hour, min, 0, 0, loc)
}

func TestMarketOpen(t *testing.T) {
	gov, err := NewGovernor(testTradingConfig())
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"mid session", nyTime(t, 12, 0), true},
		{"open boundary inclusive", nyTime(t, 9, 30), true},
		{"before open", nyTime(t, 9, 29), false},
		{"close boundary exclusive", nyTime(t, 16, 0), false},
		{"last minute", nyTime(t, 15, 59), true},
		{"pre market", nyTime(t, 8, 0), false},
		{"saturday", time.Date(2026, 1, 10, 12, 0, 0, 0, nyTime(t, 0, 0).Location()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gov.MarketOpen(tt.now))
		})
	}
}

func TestAllowEntries(t *testing.T) {
	gov, err := NewGovernor(testTradingConfig())
	require.NoError(t, err)

	now := nyTime(t, 12, 0)

	ok, _ := gov.AllowEntries(models.RiskState{DailyRealizedPnL: 0}, now)
	assert.True(t, ok)

	// Кап включительно: ровно на капе входы закрыты.
	ok, why := gov.AllowEntries(models.RiskState{DailyRealizedPnL: -100}, now)
	assert.False(t, ok)
	assert.Contains(t, why, "daily loss cap")

	ok, _ = gov.AllowEntries(models.RiskState{DailyRealizedPnL: -99.99}, now)
	assert.True(t, ok)

	ok, why = gov.AllowEntries(models.RiskState{OpenPositions: 3}, now)
	assert.False(t, ok)
	assert.Contains(t, why, "max open positions")

	ok, why = gov.AllowEntries(models.RiskState{}, nyTime(t, 17, 0))
	assert.False(t, ok)
	assert.Equal(t, "market closed", why)
}

func TestNewGovernorRejectsBadSession(t *testing.T) {
	cfg := testTradingConfig()
	cfg.Session.Open = "16:00"
	cfg.Session.Close = "09:30"
	_, err := NewGovernor(cfg)
	require.Error(t, err)

	cfg = testTradingConfig()
	cfg.Session.Timezone = "Mars/Olympus"
	_, err = NewGovernor(cfg)
	require.Error(t, err)

	cfg = testTradingConfig()
	cfg.Session.Open = "9am"
	_, err = NewGovernor(cfg)
	require.Error(t, err)
}
