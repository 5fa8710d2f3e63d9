package runner

import (
	"context"
	"log"
	"time"
)

// Start крутит циклы оценки по тикеру до отмены контекста. Следующий цикл
// не стартует, пока не завершился текущий.
func (r *Runner) Start(ctx context.Context) {
	go r.healthLoop(ctx)

	log.Printf("[RUNNER] started, interval %s", r.cfg.TradeInterval)
	r.n.Sendf("🤖 intraday bot started, interval %s", r.cfg.TradeInterval)

	ticker := time.NewTicker(r.cfg.TradeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[RUNNER] stopped")
			return
		case <-ticker.C:
			report := r.RunCycle(ctx, time.Now())
			log.Printf("[RUNNER] cycle done: opened=%d closed=%d held=%d",
				len(report.Opened), len(report.Closed), len(report.Held))
		}
	}
}

func (r *Runner) healthLoop(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st := r.State()
			r.n.Sendf("🩺 HEALTH | openPositions=%d | dailyPnL=%.2f",
				st.OpenPositions, st.DailyRealizedPnL)
		}
	}
}
