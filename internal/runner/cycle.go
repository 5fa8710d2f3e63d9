package runner

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"
	mdsvc "intraday_bot/internal/modules/marketdata/service"
	"intraday_bot/internal/notify"
	"intraday_bot/pkg/logger"

	"github.com/opentracing/opentracing-go"
)

// MarketData — всё, что цикл хочет от дата-провайдера.
type MarketData interface {
	GetQuote(ctx context.Context, symbol string) (models.Quote, error)
	GetRecentCandles(ctx context.Context, symbol string, count int) ([]models.Candle, error)
	GetVWAP(ctx context.Context, symbol string, window int) (float64, error)
}

type Universe interface {
	ListTradableSymbols() []string
}

type Recorder interface {
	RecordTrade(ctx context.Context, trade models.ClosedTrade) error
}

type SignalEvaluator interface {
	Evaluate(symbol string, candles []models.Candle, entryPrice, vwap float64) (string, bool, error)
}

// Runner гоняет цикл оценки: сперва выходы по всем открытым позициям,
// потом, если говернор разрешил, новые входы. Один логический поток —
// циклы не перекрываются.
type Runner struct {
	cfg   config.TradingConfig
	rules ExitRules

	book *Book
	gov  *Governor

	stateMu sync.Mutex // state читает health-луп из другой горутины
	state   models.RiskState

	md   MarketData
	uni  Universe
	eval SignalEvaluator
	rec  Recorder
	n    notify.Notifier

	// Порядок обхода кандидатов — policy knob, в тестах подменяется.
	order func([]string) []string

	rnd *rand.Rand

	// Последняя причина блокировки входов, нотифицируем только переходы.
	blockedWhy string
}

func NewRunner(
	cfg *config.Config,
	md MarketData,
	uni Universe,
	eval SignalEvaluator,
	rec Recorder,
	n notify.Notifier,
) (*Runner, error) {
	gov, err := NewGovernor(cfg.Trading)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:   cfg.Trading,
		rules: rulesFromConfig(cfg.Trading),
		book:  NewBook(),
		gov:   gov,
		md:    md,
		uni:   uni,
		eval:  eval,
		rec:   rec,
		n:     n,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	r.order = r.shuffled
	return r, nil
}

func (r *Runner) shuffled(symbols []string) []string {
	r.rnd.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})
	return symbols
}

// RunCycle — один полный проход: выходы, потом входы. Все мутации книги
// от фазы выходов фиксируются строго до первой попытки входа. Ошибка по
// одному символу никогда не валит весь цикл.
func (r *Runner) RunCycle(ctx context.Context, now time.Time) models.CycleReport {
	span := opentracing.StartSpan("run_cycle")
	defer span.Finish()

	var report models.CycleReport

	r.evaluateExits(ctx, now, &report)

	if allowed, why := r.gov.AllowEntries(r.state, now); !allowed {
		log.Printf("[CYCLE] entries blocked: %s", why)
		if why != r.blockedWhy {
			r.blockedWhy = why
			r.n.Sendf("⛔ entries blocked: %s", why)
		}
		return report
	}
	r.blockedWhy = ""

	r.scanEntries(ctx, now, &report)
	return report
}

func (r *Runner) evaluateExits(ctx context.Context, now time.Time, report *models.CycleReport) {
	for _, sym := range r.book.Symbols() {
		p := r.book.Get(sym)

		quote, err := r.md.GetQuote(ctx, sym)
		if err != nil {
			if errors.Is(err, mdsvc.ErrUnavailable) {
				log.Printf("[CYCLE] %s: quote unavailable, skipping", sym)
			} else {
				logger.Error("quote %s: %v", sym, err)
			}
			report.Held = append(report.Held, sym)
			continue
		}
		price := quote.Ask

		reason, err := advance(p, price, r.rules)
		if err != nil {
			// Инвариант позиции нарушен — хард-фейл только для неё.
			logger.Error("advance %s: %v", sym, err)
			continue
		}
		if reason == models.ExitNone {
			pct := (price - p.EntryPrice) / p.EntryPrice
			log.Printf("[CYCLE] %s holding, change: %.2f%%", sym, pct*100)
			report.Held = append(report.Held, sym)
			continue
		}

		trade := models.ClosedTrade{
			Symbol:     sym,
			EntryPrice: p.EntryPrice,
			ExitPrice:  price,
			Profit:     price - p.EntryPrice,
			Outcome:    models.OutcomeLoss,
			Reason:     reason,
			Pattern:    p.Pattern,
			ClosedAt:   now,
		}
		if trade.Profit >= 0 {
			trade.Outcome = models.OutcomeWin
		}

		// At-most-once: отказ рекордера логируем, но закрытие не откатываем.
		if err := r.rec.RecordTrade(ctx, trade); err != nil {
			logger.Error("record trade %s: %v", sym, err)
		}

		r.book.Remove(sym)
		r.stateMu.Lock()
		r.state.DailyRealizedPnL += trade.Profit
		r.state.OpenPositions = r.book.Len()
		r.stateMu.Unlock()

		r.n.Sendf("[%s] SOLD at %.2f, profit: %.2f | %s", sym, price, trade.Profit, reason)
		report.Closed = append(report.Closed, trade)
	}
}

func (r *Runner) scanEntries(ctx context.Context, now time.Time, report *models.CycleReport) {
	candidates := r.order(r.uni.ListTradableSymbols())

	for _, sym := range candidates {
		if r.book.Len() >= r.cfg.MaxOpenPositions {
			return
		}
		if r.book.Has(sym) {
			continue
		}

		candles, err := r.md.GetRecentCandles(ctx, sym, r.cfg.CandleCount)
		if err != nil {
			continue
		}

		quote, err := r.md.GetQuote(ctx, sym)
		if err != nil {
			continue
		}
		vwap, err := r.md.GetVWAP(ctx, sym, r.cfg.VWAPWindow)
		if err != nil {
			continue
		}

		pattern, ok, err := r.eval.Evaluate(sym, candles, quote.Ask, vwap)
		if err != nil {
			logger.Error("evaluate %s: %v", sym, err)
			continue
		}
		if !ok {
			continue
		}

		pos := &models.Position{
			Symbol:     sym,
			EntryPrice: quote.Ask,
			LastPrice:  quote.Ask,
			PeakPrice:  quote.Ask,
			Pattern:    pattern,
			OpenedAt:   now,
		}
		if err := r.book.Add(pos); err != nil {
			logger.Error("open %s: %v", sym, err)
			continue
		}
		r.stateMu.Lock()
		r.state.OpenPositions = r.book.Len()
		r.stateMu.Unlock()

		r.n.Sendf("[%s] BOUGHT at %.2f on %s near VWAP with strong volume", sym, quote.Ask, pattern)
		report.Opened = append(report.Opened, sym)
	}
}

// State — снимок риск-состояния, для health-лупа и тестов.
func (r *Runner) State() models.RiskState {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	return r.state
}
