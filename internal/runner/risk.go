package runner

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/config"
)

// Governor — кросс-позиционная политика: дневной кап по убытку, лимит
// одновременных позиций, торговая сессия. Срабатывание блокирует только
// новые входы — выходы по открытым позициям проверяются всегда.
type Governor struct {
	dailyLossCap float64 // отрицательный
	maxOpen      int

	openMin  int // минуты от полуночи биржевого времени
	closeMin int
	loc      *time.Location
}

func NewGovernor(t config.TradingConfig) (*Governor, error) {
	loc, err := time.LoadLocation(t.Session.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load session timezone: %w", err)
	}
	openMin, err := parseClock(t.Session.Open)
	if err != nil {
		return nil, fmt.Errorf("parse session open: %w", err)
	}
	closeMin, err := parseClock(t.Session.Close)
	if err != nil {
		return nil, fmt.Errorf("parse session close: %w", err)
	}
	if closeMin <= openMin {
		return nil, fmt.Errorf("session close %q is not after open %q", t.Session.Close, t.Session.Open)
	}

	return &Governor{
		dailyLossCap: t.DailyLossCap,
		maxOpen:      t.MaxOpenPositions,
		openMin:      openMin,
		closeMin:     closeMin,
		loc:          loc,
	}, nil
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bad clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad clock %q", s)
	}
	return h*60 + m, nil
}

// MarketOpen: будний день, время внутри сессии биржевого пояса.
func (g *Governor) MarketOpen(now time.Time) bool {
	local := now.In(g.loc)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= g.openMin && minutes < g.closeMin
}

// AllowEntries — все условия сразу; причина отказа для логов и нотификаций.
func (g *Governor) AllowEntries(st models.RiskState, now time.Time) (bool, string) {
	if st.DailyRealizedPnL <= g.dailyLossCap {
		return false, fmt.Sprintf("daily loss cap reached (%.2f <= %.2f)", st.DailyRealizedPnL, g.dailyLossCap)
	}
	if !g.MarketOpen(now) {
		return false, "market closed"
	}
	if st.OpenPositions >= g.maxOpen {
		return false, fmt.Sprintf("max open positions reached (%d)", st.OpenPositions)
	}
	return true, ""
}
