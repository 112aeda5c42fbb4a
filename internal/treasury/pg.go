package treasury

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundledger/internal/sqlinline"
)

// PGGateway records outbound payments in PostgreSQL. Each batch runs in a
// single transaction: journal rows plus account balance updates commit
// together or roll back together.
type PGGateway struct {
	pool *pgxpool.Pool
}

func NewPGGateway(pool *pgxpool.Pool) *PGGateway {
	return &PGGateway{pool: pool}
}

// Execute writes the batch inside one transaction.
func (g *PGGateway) Execute(ctx context.Context, fundID int64, payments []Payment) error {
	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transfer batch: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batchID := uuid.NewString()
	for _, p := range payments {
		if _, err := tx.Exec(ctx, sqlinline.QInsertTransfer, batchID, fundID, p.To, p.Amount, p.Reason); err != nil {
			return fmt.Errorf("journal transfer to %s: %w", p.To, err)
		}
		if _, err := tx.Exec(ctx, sqlinline.QCreditAccount, p.To, p.Amount); err != nil {
			return fmt.Errorf("credit account %s: %w", p.To, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transfer batch: %w", err)
	}
	return nil
}
