package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"fundledger/internal/domain"
	"fundledger/internal/treasury"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	ledger  *Ledger
	gateway *treasury.MemoryGateway
	clock   *clockwork.FakeClock
	enabled bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		gateway: treasury.NewMemoryGateway(),
		clock:   clockwork.NewFakeClockAt(testStart),
		enabled: true,
	}
	l, err := New(Config{
		Gateway: env.gateway,
		Clock:   env.clock,
		Enabled: func() bool { return env.enabled },
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)
	env.ledger = l
	return env
}

func (e *testEnv) createFund(t *testing.T, target int64, end time.Time) int64 {
	t.Helper()
	fund, err := e.ledger.CreateFund(context.Background(), "water well", "a well", end, target, "charity", "owner")
	require.NoError(t, err)
	return fund.ID
}

func TestLedger_New_RequiresGateway(t *testing.T) {
	t.Parallel()

	l, err := New(Config{})
	require.Error(t, err)
	require.Nil(t, l)
	require.Contains(t, err.Error(), "gateway is required")
}

func TestLedger_Contribute_Accumulates(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 1000, testStart.Add(30*24*time.Hour))

	_, err := env.ledger.Contribute(ctx, id, "alice", 200)
	require.NoError(t, err)
	fund, err := env.ledger.Contribute(ctx, id, "alice", 300)
	require.NoError(t, err)

	require.Equal(t, int64(500), fund.CurrentAmount)
	require.True(t, fund.Active)

	total, err := env.ledger.CheckFunding(id)
	require.NoError(t, err)
	require.Equal(t, int64(500), total)

	// Nothing left the ledger yet.
	require.Zero(t, env.gateway.Balance("owner"))
	require.Zero(t, env.gateway.Balance("charity"))
}

func TestLedger_Contribute_SettlesOnGoal(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 100, testStart.Add(30*24*time.Hour))

	_, err := env.ledger.Contribute(ctx, id, "alice", 60)
	require.NoError(t, err)

	// Crossing the target settles inside the same call. The excess over the
	// target flows into the split uncapped: fee = floor(110*2/100) = 2.
	fund, err := env.ledger.Contribute(ctx, id, "bob", 50)
	require.NoError(t, err)
	require.False(t, fund.Active)
	require.Equal(t, int64(110), fund.CurrentAmount)
	require.Equal(t, int64(2), env.gateway.Balance("charity"))
	require.Equal(t, int64(108), env.gateway.Balance("owner"))

	// Closed funds reject further contributions.
	_, err = env.ledger.Contribute(ctx, id, "carol", 10)
	require.ErrorIs(t, err, domain.ErrFundInactive)
	total, err := env.ledger.CheckFunding(id)
	require.NoError(t, err)
	require.Equal(t, int64(110), total)
}

func TestLedger_Contribute_ExactTargetSettles(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 100, testStart.Add(time.Hour))

	fund, err := env.ledger.Contribute(ctx, id, "alice", 100)
	require.NoError(t, err)
	require.False(t, fund.Active)
	require.Equal(t, int64(2), env.gateway.Balance("charity"))
	require.Equal(t, int64(98), env.gateway.Balance("owner"))
}

func TestLedger_Contribute_TransferFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 100, testStart.Add(time.Hour))

	_, err := env.ledger.Contribute(ctx, id, "alice", 60)
	require.NoError(t, err)

	env.gateway.RejectPayee("charity", errors.New("account frozen"))
	_, err = env.ledger.Contribute(ctx, id, "carol", 50)
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	// The whole call rolled back: pool, flag, and donor records as before.
	fund, err := env.ledger.Fund(id)
	require.NoError(t, err)
	require.True(t, fund.Active)
	require.Equal(t, int64(60), fund.CurrentAmount)
	require.False(t, env.ledger.HasContributed(id, "carol"))
	require.Zero(t, env.gateway.Balance("owner"))
}

func TestLedger_MutatingOpsRespectSwitch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 100, testStart.Add(time.Hour))

	env.enabled = false
	_, err := env.ledger.CreateFund(ctx, "x", "", testStart, 1, "charity", "owner")
	require.ErrorIs(t, err, domain.ErrLedgerDisabled)
	_, err = env.ledger.Contribute(ctx, id, "alice", 10)
	require.ErrorIs(t, err, domain.ErrLedgerDisabled)
	require.ErrorIs(t, env.ledger.Refund(ctx, id), domain.ErrLedgerDisabled)

	// Reads still work while disabled.
	_, err = env.ledger.Fund(id)
	require.NoError(t, err)
}

func TestLedger_UnknownFund(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.ledger.Contribute(ctx, 9, "alice", 10)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, env.ledger.Refund(ctx, 9), domain.ErrNotFound)
	_, err = env.ledger.CheckFunding(9)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_AllFunds_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 1000, testStart.Add(time.Hour))

	before := env.ledger.AllFunds()
	require.Len(t, before, 1)

	_, err := env.ledger.Contribute(ctx, id, "alice", 400)
	require.NoError(t, err)

	// The previously returned copy does not change retroactively.
	require.Zero(t, before[0].CurrentAmount)
	require.Equal(t, int64(400), env.ledger.AllFunds()[0].CurrentAmount)
}

func TestLedger_Refund_RejectsUnderfundedExpiredFund(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 100, testStart.Add(time.Hour))

	_, err := env.ledger.Contribute(ctx, id, "alice", 40)
	require.NoError(t, err)

	env.clock.Advance(2 * time.Hour)

	// Eligibility demands a pool strictly above target, so the intuitive
	// "expired and short of goal" case is rejected.
	require.ErrorIs(t, env.ledger.Refund(ctx, id), domain.ErrIneligibleRefund)
	require.Zero(t, env.gateway.Balance("alice"))
}

func TestLedger_Refund_RejectsBeforeDeadline(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 100, testStart.Add(time.Hour))
	overfund(t, env, id, 150)

	require.ErrorIs(t, env.ledger.Refund(ctx, id), domain.ErrIneligibleRefund)
}

func TestLedger_Refund_PaysDonorListEntriesAndLumpFee(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 10000, testStart.Add(time.Hour))

	_, err := env.ledger.Contribute(ctx, id, "alice", 300)
	require.NoError(t, err)
	_, err = env.ledger.Contribute(ctx, id, "alice", 300)
	require.NoError(t, err)
	_, err = env.ledger.Contribute(ctx, id, "bob", 300)
	require.NoError(t, err)

	overfund(t, env, id, 10050)
	env.clock.Advance(2 * time.Hour)

	require.NoError(t, env.ledger.Refund(ctx, id))

	// Alice appears twice in the donor list, so her current cumulative
	// balance pays out twice: 2 * (600 - 12). Bob once: 300 - 6.
	require.Equal(t, int64(1176), env.gateway.Balance("alice"))
	require.Equal(t, int64(294), env.gateway.Balance("bob"))
	// The lump fee comes from the pool total, on top of the per-donor fees:
	// floor(10050*2/100) = 201.
	require.Equal(t, int64(201), env.gateway.Balance("charity"))

	// The fund is not terminalized and records are not zeroed, so an
	// eligible caller can run the whole payout again.
	fund, err := env.ledger.Fund(id)
	require.NoError(t, err)
	require.True(t, fund.Active)
	require.NoError(t, env.ledger.Refund(ctx, id))
	require.Equal(t, int64(2352), env.gateway.Balance("alice"))
}

func TestLedger_Refund_TransferFailureIsAtomic(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 1000, testStart.Add(time.Hour))

	_, err := env.ledger.Contribute(ctx, id, "alice", 200)
	require.NoError(t, err)
	_, err = env.ledger.Contribute(ctx, id, "bob", 200)
	require.NoError(t, err)

	overfund(t, env, id, 1100)
	env.clock.Advance(2 * time.Hour)

	env.gateway.RejectPayee("bob", errors.New("account closed"))
	require.ErrorIs(t, env.ledger.Refund(ctx, id), domain.ErrTransferFailed)

	// No partial payout: alice got nothing either.
	require.Zero(t, env.gateway.Balance("alice"))
	require.Zero(t, env.gateway.Balance("charity"))
}

func TestLedger_Refund_RejectsClosedFund(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	id := env.createFund(t, 100, testStart.Add(time.Hour))

	_, err := env.ledger.Contribute(ctx, id, "alice", 120)
	require.NoError(t, err)

	env.clock.Advance(2 * time.Hour)
	require.ErrorIs(t, env.ledger.Refund(ctx, id), domain.ErrFundInactive)
}

// overfund pushes a fund's pool above its target without going through
// Contribute. The refund gate demands an over-funded open fund, a state the
// contribution path can never produce because crossing the target closes the
// fund in the same call.
func overfund(t *testing.T, env *testEnv, fundID int64, total int64) {
	t.Helper()
	fund, err := env.ledger.registry.Get(fundID)
	require.NoError(t, err)
	fund.CurrentAmount = total
}
