package event

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fundledger/internal/domain"
	"fundledger/internal/middleware"
)

// PGSink records ledger notifications in the events table. Inserts are
// fire-and-forget: a failed write is logged and never fails the caller.
type PGSink struct {
	repo domain.EventRepository
	log  zerolog.Logger
}

func NewPGSink(repo domain.EventRepository, log zerolog.Logger) *PGSink {
	return &PGSink{repo: repo, log: log}
}

func (s *PGSink) FundCreated(ctx context.Context, fundID int64) {
	s.record(ctx, domain.Event{Type: domain.EventFundCreated, FundID: fundID})
}

func (s *PGSink) ContributionReceived(ctx context.Context, fundID int64) {
	s.record(ctx, domain.Event{Type: domain.EventContributionReceived, FundID: fundID})
}

func (s *PGSink) DonationMade(ctx context.Context, fundID int64, amount int64) {
	s.record(ctx, domain.Event{Type: domain.EventDonationMade, FundID: fundID, Amount: amount})
}

func (s *PGSink) record(ctx context.Context, ev domain.Event) {
	ev.ID = uuid.NewString()
	ev.Country = middleware.CountryFromContext(ctx)
	if err := s.repo.Insert(ctx, &ev); err != nil {
		s.log.Warn().Err(err).Str("type", ev.Type).Int64("fund_id", ev.FundID).Msg("event write failed")
	}
}
