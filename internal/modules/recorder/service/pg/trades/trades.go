package trades

import (
	"context"
	"fmt"

	"intraday_bot/internal/models"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
)

const insertSQL = `
INSERT INTO trades (symbol, entry_price, exit_price, profit, outcome, reason, pattern, details, closed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Trades implement db store
type Trades struct{}

// New instance
func New() *Trades {
	return &Trades{}
}

func (t *Trades) Insert(ctx context.Context, tx pgx.Tx, trade *models.ClosedTrade) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("Trades.Insert: %w", err)
		}
	}()

	var details []byte
	details, err = sonic.Marshal(map[string]any{
		"reason":  trade.Reason,
		"pattern": trade.Pattern,
	})
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, insertSQL,
		trade.Symbol,
		trade.EntryPrice,
		trade.ExitPrice,
		trade.Profit,
		string(trade.Outcome),
		string(trade.Reason),
		trade.Pattern,
		details,
		trade.ClosedAt,
	)
	if err != nil {
		return err
	}
	return
}
