package models

import "time"

// ExitReason — причина закрытия позиции. Ровно одна на сделку.
type ExitReason string

const (
	ExitNone           ExitReason = ""
	ExitCumulativeStop ExitReason = "CumulativeStopLoss"
	ExitBreakEvenStop  ExitReason = "BreakEvenStop"
	ExitTrailingStop   ExitReason = "TrailingStop"
)

type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// Position — одна открытая сделка. Живёт только в памяти книги,
// мутируется раз в цикл своим же шагом оценки.
type Position struct {
	Symbol     string
	EntryPrice float64
	LastPrice  float64

	// PeakPrice поддерживается только после взведения трейла
	// и дальше не убывает.
	PeakPrice   float64
	TrailActive bool

	// BreakEvenArmed взводится один раз и не сбрасывается.
	BreakEvenArmed bool

	// CumulativeLoss — сумма модулей отрицательных процентных изменений
	// по циклам. Не drawdown: только растёт, пока цена ниже входа.
	CumulativeLoss float64

	Pattern  string
	OpenedAt time.Time
}

// ClosedTrade — write-once запись о закрытой сделке для рекордера.
type ClosedTrade struct {
	Symbol     string
	EntryPrice float64
	ExitPrice  float64
	Profit     float64
	Outcome    Outcome
	Reason     ExitReason
	Pattern    string
	ClosedAt   time.Time
}

// RiskState — процессное состояние риск-говернора. Сбрасывается
// только стартом процесса, перенос между днями не моделируем.
type RiskState struct {
	DailyRealizedPnL float64
	OpenPositions    int
}

// CycleReport — итог одного прогона RunCycle.
type CycleReport struct {
	Opened []string
	Closed []ClosedTrade
	Held   []string
}
