package event

import (
	"context"

	"fundledger/internal/domain"
)

// Fanout forwards every notification to all wrapped sinks.
type Fanout []domain.EventSink

func (f Fanout) FundCreated(ctx context.Context, fundID int64) {
	for _, s := range f {
		s.FundCreated(ctx, fundID)
	}
}

func (f Fanout) ContributionReceived(ctx context.Context, fundID int64) {
	for _, s := range f {
		s.ContributionReceived(ctx, fundID)
	}
}

func (f Fanout) DonationMade(ctx context.Context, fundID int64, amount int64) {
	for _, s := range f {
		s.DonationMade(ctx, fundID, amount)
	}
}
