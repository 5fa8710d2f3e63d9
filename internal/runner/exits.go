package runner

import (
	"fmt"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"
)

// ExitRules — пороги выходной машины, все в долях (0.01 == 1%).
type ExitRules struct {
	CumLossPct      float64
	BreakEvenArmPct float64
	TrailArmPct     float64
	TrailDropPct    float64

	BreakEvenStrict        bool
	ResetCumLossOnRecovery bool
}

func rulesFromConfig(t config.TradingConfig) ExitRules {
	return ExitRules{
		CumLossPct:             t.CumLossPct,
		BreakEvenArmPct:        t.BreakEvenArmPct,
		TrailArmPct:            t.TrailArmPct,
		TrailDropPct:           t.TrailDropPct,
		BreakEvenStrict:        t.BreakEvenStrict,
		ResetCumLossOnRecovery: t.ResetCumLossOnRecovery,
	}
}

// advance прогоняет позицию через один шаг машины выходов по свежей цене.
// Сначала бухгалтерия (накопление минуса, взведение безубытка и трейла),
// затем проверки в фиксированном порядке — первый сработавший выигрывает:
// накопленный стоп, безубыток, трейлинг. Все сравнения включительные.
// Неизменившаяся цена — no-op: без нового наблюдения переходов нет.
func advance(p *models.Position, price float64, rules ExitRules) (models.ExitReason, error) {
	if p.EntryPrice <= 0 {
		return models.ExitNone, fmt.Errorf("position %s: entry price %v is not positive", p.Symbol, p.EntryPrice)
	}
	if price <= 0 {
		return models.ExitNone, fmt.Errorf("position %s: price %v is not positive", p.Symbol, price)
	}
	if price == p.LastPrice {
		return models.ExitNone, nil
	}
	p.LastPrice = price

	pct := (price - p.EntryPrice) / p.EntryPrice

	if pct < 0 {
		p.CumulativeLoss += -pct
	} else if rules.ResetCumLossOnRecovery {
		p.CumulativeLoss = 0
	}

	if pct >= rules.TrailArmPct {
		if !p.TrailActive {
			p.TrailActive = true
			p.PeakPrice = price
		} else if price > p.PeakPrice {
			p.PeakPrice = price
		}
	}
	if pct >= rules.BreakEvenArmPct {
		p.BreakEvenArmed = true
	}

	if p.CumulativeLoss >= rules.CumLossPct {
		return models.ExitCumulativeStop, nil
	}

	if p.BreakEvenArmed {
		if rules.BreakEvenStrict {
			if price < p.EntryPrice {
				return models.ExitBreakEvenStop, nil
			}
		} else if price <= p.EntryPrice {
			return models.ExitBreakEvenStop, nil
		}
	}

	if p.TrailActive {
		drop := (p.PeakPrice - price) / p.PeakPrice
		if drop >= rules.TrailDropPct {
			return models.ExitTrailingStop, nil
		}
	}

	return models.ExitNone, nil
}
