package service

import (
	"context"
	"fmt"

	"intraday_bot/internal/models"
	"intraday_bot/internal/modules/recorder/service/pg/trades"
	"intraday_bot/pkg/db"

	"github.com/jackc/pgx/v5"
)

// PgRecorder — журнал закрытых сделок в постгресе. Семантика at-most-once:
// неудачная запись логируется вызывающим, сделка всё равно считается
// закрытой в памяти.
type PgRecorder struct {
	txm    *db.PgTxManager
	trades *trades.Trades
}

func NewPgRecorder(txm *db.PgTxManager) *PgRecorder {
	return &PgRecorder{
		txm:    txm,
		trades: trades.New(),
	}
}

func (r *PgRecorder) RecordTrade(ctx context.Context, trade models.ClosedTrade) error {
	err := r.txm.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		return r.trades.Insert(ctxTx, tx, &trade)
	})
	if err != nil {
		return fmt.Errorf("record trade %s: %w", trade.Symbol, err)
	}
	return nil
}
