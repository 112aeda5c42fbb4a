package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fundledger/internal/domain"
	"fundledger/internal/sqlinline"
)

// EventRepositoryPG implements EventRepository using PostgreSQL.
type EventRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new event repo.
func NewEventRepository(pool *pgxpool.Pool) *EventRepositoryPG {
	return &EventRepositoryPG{pool: pool}
}

// Insert stores one ledger notification.
func (r *EventRepositoryPG) Insert(ctx context.Context, event *domain.Event) error {
	_, err := r.pool.Exec(ctx, sqlinline.QInsertEvent,
		event.ID, event.Type, event.FundID, event.Amount, event.Country)
	return err
}

// ListRecent returns recent notifications limited by the input value.
func (r *EventRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, sqlinline.QListEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(&event.ID, &event.Type, &event.FundID, &event.Amount, &event.Country, &event.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
