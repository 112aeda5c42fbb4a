package ledger

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"fundledger/internal/domain"
	"fundledger/internal/treasury"
)

// SettlementEngine carries the two delicate money paths: the goal-crossing
// close and the full refund. It only stages and executes transfer batches;
// every in-memory state commit belongs to the Ledger facade, so a failed
// batch leaves no partial state behind.
type SettlementEngine struct {
	fees    *FeeCalculator
	gateway treasury.Gateway
	clock   clockwork.Clock
}

func NewSettlementEngine(fees *FeeCalculator, gateway treasury.Gateway, clock clockwork.Clock) *SettlementEngine {
	return &SettlementEngine{fees: fees, gateway: gateway, clock: clock}
}

// Settle pays out a fully funded pool: the fee portion to the donation
// recipient, the remainder to the fund owner. total is the pool including
// the contribution that crossed the target; any excess over target flows
// into the split uncapped. Returns the fee paid.
func (e *SettlementEngine) Settle(ctx context.Context, fund *domain.Fund, total int64) (int64, error) {
	fee := e.fees.Portion(total)
	batch := []treasury.Payment{
		{To: fund.DonationRecipient, Amount: fee, Reason: treasury.ReasonDonation},
		{To: fund.Owner, Amount: total - fee, Reason: treasury.ReasonOwnerPayout},
	}
	if err := e.gateway.Execute(ctx, fund.ID, batch); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}
	return fee, nil
}

// RefundEligible reports whether a refund may run: the pool must exceed the
// target and the deadline must have passed. Note the direction of the target
// comparison; refunds are gated on an over-funded pool, not an under-funded
// one.
func (e *SettlementEngine) RefundEligible(fund *domain.Fund) bool {
	return fund.Target < fund.CurrentAmount && fund.End.Before(e.clock.Now())
}

// Refund pays every donor-list entry that entry's current cumulative balance
// minus its fee portion, then pays one lump fee computed on the fund's
// running total to the donation recipient. A donor appearing twice in the
// list is paid twice against the same balance, contribution records are not
// zeroed, and the fund stays open. The whole batch executes atomically.
// Returns the lump fee paid to the recipient.
func (e *SettlementEngine) Refund(ctx context.Context, fund *domain.Fund, donors []string, amountOf func(string) int64) (int64, error) {
	batch := make([]treasury.Payment, 0, len(donors)+1)
	for _, donor := range donors {
		amount := amountOf(donor)
		fee := e.fees.Portion(amount)
		batch = append(batch, treasury.Payment{To: donor, Amount: amount - fee, Reason: treasury.ReasonRefund})
	}
	lump := e.fees.Portion(fund.CurrentAmount)
	batch = append(batch, treasury.Payment{To: fund.DonationRecipient, Amount: lump, Reason: treasury.ReasonDonation})
	if err := e.gateway.Execute(ctx, fund.ID, batch); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}
	return lump, nil
}
