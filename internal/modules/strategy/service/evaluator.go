package service

import (
	"fmt"
	"log"
	"math"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"
)

const minWindow = 3

// Evaluator решает, есть ли вход по символу: свечной паттерн плюс два
// фильтра — близость к VWAP и подтверждение объёмом. Чистая функция от
// своих входов, если не считать логов.
type Evaluator struct {
	patterns []Pattern
	vwapTol  float64
}

func NewEvaluator(cfg *config.Config) (*Evaluator, error) {
	patterns, err := NewPatterns(cfg)
	if err != nil {
		return nil, fmt.Errorf("build patterns: %w", err)
	}
	return &Evaluator{
		patterns: patterns,
		vwapTol:  cfg.Trading.VWAPTolerancePct,
	}, nil
}

// Evaluate возвращает имя первого сматчившегося паттерна, прошедшего
// фильтры. Ошибка означает битые входные данные, а не "сигнала нет".
func (e *Evaluator) Evaluate(symbol string, candles []models.Candle, entryPrice, vwap float64) (string, bool, error) {
	if len(candles) < minWindow {
		return "", false, nil
	}
	if entryPrice <= 0 {
		return "", false, fmt.Errorf("%s: entry price %v is not positive", symbol, entryPrice)
	}
	if vwap <= 0 {
		return "", false, fmt.Errorf("%s: vwap %v is not positive", symbol, vwap)
	}
	for _, c := range candles {
		if c.Volume < 0 {
			return "", false, fmt.Errorf("%s: negative volume %v", symbol, c.Volume)
		}
	}

	w := Window{Candles: candles, VWAP: vwap}

	var pattern string
	for _, p := range e.patterns {
		if p.Match(w) {
			pattern = p.Name()
			break
		}
	}
	if pattern == "" {
		return "", false, nil
	}

	// Фильтр 1: не гонимся за ценой, ушедшей от VWAP. Граница включительно.
	distance := math.Abs(entryPrice-vwap) / vwap
	if distance > e.vwapTol {
		log.Printf("[SIGNAL] %s: rejected %s, too far from VWAP (%.3f%%)", symbol, pattern, distance*100)
		return "", false, nil
	}

	// Фильтр 2: объём последней свечи не ниже среднего по окну без неё.
	avgVolume := 0.0
	for _, c := range candles[:len(candles)-1] {
		avgVolume += c.Volume
	}
	avgVolume /= float64(len(candles) - 1)
	lastVolume := candles[len(candles)-1].Volume
	if lastVolume < avgVolume {
		log.Printf("[SIGNAL] %s: rejected %s, weak volume (%.1f < avg %.1f)", symbol, pattern, lastVolume, avgVolume)
		return "", false, nil
	}

	return pattern, true, nil
}
