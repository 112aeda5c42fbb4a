package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"fundledger/internal/domain"
	"fundledger/internal/metrics"
	"fundledger/internal/treasury"
)

// Config wires a Ledger. Gateway is required; everything else has a default.
type Config struct {
	FeePercent int64
	Gateway    treasury.Gateway
	Enabled    func() bool
	Sink       domain.EventSink
	Snapshots  domain.FundSnapshotRepository
	Clock      clockwork.Clock
	Logger     zerolog.Logger
}

// Ledger is the fund ledger and settlement engine behind the public API.
// One mutex serializes every mutating operation, so no caller can observe a
// partially applied settlement.
type Ledger struct {
	mu            sync.Mutex
	registry      *FundRegistry
	contributions *ContributionLedger
	engine        *SettlementEngine
	enabled       func() bool
	sink          domain.EventSink
	snapshots     domain.FundSnapshotRepository
	clock         clockwork.Clock
	log           zerolog.Logger
}

func New(cfg Config) (*Ledger, error) {
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("ledger: transfer gateway is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Sink == nil {
		cfg.Sink = domain.NopSink{}
	}
	if cfg.Enabled == nil {
		cfg.Enabled = func() bool { return true }
	}
	fees := NewFeeCalculator(cfg.FeePercent)
	return &Ledger{
		registry:      NewFundRegistry(),
		contributions: NewContributionLedger(),
		engine:        NewSettlementEngine(fees, cfg.Gateway, cfg.Clock),
		enabled:       cfg.Enabled,
		sink:          cfg.Sink,
		snapshots:     cfg.Snapshots,
		clock:         cfg.Clock,
		log:           cfg.Logger,
	}, nil
}

// CreateFund registers a new campaign and returns its snapshot. Target and
// deadline are stored as given, without validation.
func (l *Ledger) CreateFund(ctx context.Context, title, description string, end time.Time, target int64, recipient, owner string) (domain.Fund, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled() {
		return domain.Fund{}, domain.ErrLedgerDisabled
	}

	fund := l.registry.Create(title, description, end, target, recipient, owner, l.clock.Now())
	l.persistSnapshot(ctx, fund)
	l.sink.FundCreated(ctx, fund.ID)
	metrics.FundsCreatedTotal.Inc()
	l.log.Info().Int64("fund_id", fund.ID).Int64("target", target).Str("owner", owner).Msg("fund created")
	return fund.Clone(), nil
}

// Contribute adds amount to the fund's pool. When the pool reaches the
// target, the success settlement runs inside the same call: fee to the
// donation recipient, remainder to the owner, fund closed. The contribution
// and the close commit together only after the transfer batch succeeds; a
// failed batch leaves the fund exactly as it was.
func (l *Ledger) Contribute(ctx context.Context, fundID int64, contributor string, amount int64) (domain.Fund, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled() {
		metrics.ContributionsTotal.WithLabelValues("rejected").Inc()
		return domain.Fund{}, domain.ErrLedgerDisabled
	}
	fund, err := l.registry.Get(fundID)
	if err != nil {
		metrics.ContributionsTotal.WithLabelValues("rejected").Inc()
		return domain.Fund{}, err
	}
	if !fund.Active {
		metrics.ContributionsTotal.WithLabelValues("rejected").Inc()
		return domain.Fund{}, domain.ErrFundInactive
	}

	total := fund.CurrentAmount + amount
	if total >= fund.Target {
		fee, err := l.engine.Settle(ctx, fund, total)
		if err != nil {
			metrics.ContributionsTotal.WithLabelValues("failed").Inc()
			metrics.TransferFailuresTotal.WithLabelValues("settlement").Inc()
			l.log.Error().Err(err).Int64("fund_id", fundID).Msg("settlement aborted")
			return domain.Fund{}, err
		}
		fund.CurrentAmount = total
		l.contributions.Add(fundID, contributor, amount)
		fund.Active = false
		l.sink.ContributionReceived(ctx, fundID)
		l.sink.DonationMade(ctx, fundID, fee)
		metrics.ContributionsTotal.WithLabelValues("accepted").Inc()
		metrics.SettlementsTotal.Inc()
		l.log.Info().Int64("fund_id", fundID).Int64("total", total).Int64("fee", fee).Msg("fund settled")
	} else {
		fund.CurrentAmount = total
		l.contributions.Add(fundID, contributor, amount)
		l.sink.ContributionReceived(ctx, fundID)
		metrics.ContributionsTotal.WithLabelValues("accepted").Inc()
	}

	l.persistSnapshot(ctx, fund)
	return fund.Clone(), nil
}

// Refund pays back every donor-list entry, minus the fee portion, and routes
// one lump fee on the pool total to the donation recipient. The fund is left
// open and contribution records untouched; eligibility gates repeat calls.
func (l *Ledger) Refund(ctx context.Context, fundID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled() {
		metrics.RefundsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrLedgerDisabled
	}
	fund, err := l.registry.Get(fundID)
	if err != nil {
		metrics.RefundsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	if !fund.Active {
		metrics.RefundsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrFundInactive
	}
	if !l.engine.RefundEligible(fund) {
		metrics.RefundsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrIneligibleRefund
	}

	donors := l.contributions.Donors(fundID)
	lump, err := l.engine.Refund(ctx, fund, donors, func(donor string) int64 {
		return l.contributions.AmountOf(donor, fundID)
	})
	if err != nil {
		metrics.RefundsTotal.WithLabelValues("failed").Inc()
		metrics.TransferFailuresTotal.WithLabelValues("refund").Inc()
		l.log.Error().Err(err).Int64("fund_id", fundID).Msg("refund aborted")
		return err
	}
	l.sink.DonationMade(ctx, fundID, lump)
	metrics.RefundsTotal.WithLabelValues("paid").Inc()
	l.log.Info().Int64("fund_id", fundID).Int("payouts", len(donors)).Int64("fee", lump).Msg("fund refunded")
	return nil
}

// CheckFunding returns the fund's accumulated pool.
func (l *Ledger) CheckFunding(fundID int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fund, err := l.registry.Get(fundID)
	if err != nil {
		return 0, err
	}
	return fund.CurrentAmount, nil
}

// Fund returns a snapshot of one fund.
func (l *Ledger) Fund(fundID int64) (domain.Fund, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Snapshot(fundID)
}

// AllFunds returns snapshots of every fund in creation order.
func (l *Ledger) AllFunds() []domain.Fund {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.All()
}

// HasContributed reports whether contributor appears in the fund's
// deduplicated donor set.
func (l *Ledger) HasContributed(fundID int64, contributor string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.contributions.HasContributed(fundID, contributor)
}

// persistSnapshot writes the fund through to storage. The in-memory record
// stays authoritative; a write failure is logged and not surfaced.
func (l *Ledger) persistSnapshot(ctx context.Context, fund *domain.Fund) {
	if l.snapshots == nil {
		return
	}
	if err := l.snapshots.Upsert(ctx, fund); err != nil {
		l.log.Warn().Err(err).Int64("fund_id", fund.ID).Msg("fund snapshot write failed")
	}
}
