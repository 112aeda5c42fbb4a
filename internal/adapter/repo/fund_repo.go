package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fundledger/internal/domain"
	"fundledger/internal/sqlinline"
)

// FundRepositoryPG implements FundSnapshotRepository using PostgreSQL.
type FundRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewFundRepository creates a new fund snapshot repo.
func NewFundRepository(pool *pgxpool.Pool) *FundRepositoryPG {
	return &FundRepositoryPG{pool: pool}
}

// Upsert writes the fund's current state through to storage.
func (r *FundRepositoryPG) Upsert(ctx context.Context, fund *domain.Fund) error {
	_, err := r.pool.Exec(ctx, sqlinline.QUpsertFund,
		fund.ID, fund.Title, fund.Description, fund.End, fund.Target,
		fund.CurrentAmount, fund.DonationRecipient, fund.Owner, fund.Active, fund.CreatedAt)
	return err
}

// ListExpiredActive returns funds past their deadline that are still open.
func (r *FundRepositoryPG) ListExpiredActive(ctx context.Context) ([]domain.Fund, error) {
	rows, err := r.pool.Query(ctx, sqlinline.QListExpiredActiveFunds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Fund
	for rows.Next() {
		var fund domain.Fund
		if err := rows.Scan(&fund.ID, &fund.Title, &fund.Description, &fund.End, &fund.Target,
			&fund.CurrentAmount, &fund.DonationRecipient, &fund.Owner, &fund.Active, &fund.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, fund)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
