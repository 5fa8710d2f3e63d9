package service

import (
	"fmt"
	"intraday_bot/internal/modules/config"
)

// NewPatterns собирает список предикатов в порядке приоритета из конфига.
func NewPatterns(cfg *config.Config) ([]Pattern, error) {
	names := cfg.Trading.Patterns
	out := make([]Pattern, 0, len(names))
	for _, name := range names {
		switch name {
		case "hammer":
			out = append(out, Hammer{})
		case "bullish_engulfing":
			out = append(out, BullishEngulfing{})
		case "marubozu":
			out = append(out, Marubozu{})
		case "three_bar_play":
			out = append(out, ThreeBarPlay{})
		case "inside_bar":
			out = append(out, InsideBar{})
		case "breakout_retest":
			out = append(out, BreakoutRetest{})
		case "doji_near_vwap":
			out = append(out, DojiNearVWAP{Tolerance: cfg.Trading.VWAPTolerancePct})
		default:
			return nil, fmt.Errorf("unknown pattern %q", name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty pattern list")
	}
	return out, nil
}
