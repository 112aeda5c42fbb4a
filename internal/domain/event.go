package domain

import (
	"context"
	"time"
)

// Event types recorded by the ledger's notification feed.
const (
	EventFundCreated          = "fund_created"
	EventContributionReceived = "contribution_received"
	EventDonationMade         = "donation_made"
)

// Event is one ledger notification. Country is a best-effort ISO code for the
// request that produced the event and may be empty.
type Event struct {
	ID        string
	Type      string
	FundID    int64
	Amount    int64
	Country   string
	CreatedAt time.Time
}

// EventSink receives fire-and-forget ledger notifications. Implementations
// must never fail the calling operation.
type EventSink interface {
	FundCreated(ctx context.Context, fundID int64)
	ContributionReceived(ctx context.Context, fundID int64)
	DonationMade(ctx context.Context, fundID int64, amount int64)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) FundCreated(context.Context, int64) {}
func (NopSink) ContributionReceived(context.Context, int64) {}
func (NopSink) DonationMade(context.Context, int64, int64) {}
