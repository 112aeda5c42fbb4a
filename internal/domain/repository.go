package domain

import "context"

// FundSnapshotRepository persists write-through copies of fund state. The
// in-memory ledger stays authoritative; snapshot failures are logged by the
// caller, never surfaced.
type FundSnapshotRepository interface {
	Upsert(ctx context.Context, fund *Fund) error
	ListExpiredActive(ctx context.Context) ([]Fund, error)
}

// EventRepository persists the ledger notification feed.
type EventRepository interface {
	Insert(ctx context.Context, event *Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
