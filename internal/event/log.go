package event

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSink writes every ledger notification to the service log.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) FundCreated(_ context.Context, fundID int64) {
	s.log.Info().Int64("fund_id", fundID).Msg("event: fund created")
}

func (s *LogSink) ContributionReceived(_ context.Context, fundID int64) {
	s.log.Info().Int64("fund_id", fundID).Msg("event: contribution received")
}

func (s *LogSink) DonationMade(_ context.Context, fundID int64, amount int64) {
	s.log.Info().Int64("fund_id", fundID).Int64("amount", amount).Msg("event: donation made")
}
