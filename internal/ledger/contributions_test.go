package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContributionLedger_CumulativeRecords(t *testing.T) {
	t.Parallel()

	contribs := NewContributionLedger()
	contribs.Add(0, "alice", 10)
	contribs.Add(0, "bob", 10)
	contribs.Add(0, "alice", 10)
	contribs.Add(0, "bob", 10)

	require.Equal(t, int64(20), contribs.AmountOf("alice", 0))
	require.Equal(t, int64(20), contribs.AmountOf("bob", 0))

	// The raw donor list keeps one entry per call, duplicates included.
	require.Equal(t, []string{"alice", "bob", "alice", "bob"}, contribs.Donors(0))

	// The authorization set is deduplicated.
	require.True(t, contribs.HasContributed(0, "alice"))
	require.True(t, contribs.HasContributed(0, "bob"))
	require.False(t, contribs.HasContributed(0, "carol"))
	require.False(t, contribs.HasContributed(1, "alice"))
}

func TestContributionLedger_PerFundIsolation(t *testing.T) {
	t.Parallel()

	contribs := NewContributionLedger()
	contribs.Add(0, "alice", 25)
	contribs.Add(1, "alice", 75)

	require.Equal(t, int64(25), contribs.AmountOf("alice", 0))
	require.Equal(t, int64(75), contribs.AmountOf("alice", 1))
	require.Zero(t, contribs.AmountOf("alice", 2))
}

func TestContributionLedger_DonorsReturnsCopy(t *testing.T) {
	t.Parallel()

	contribs := NewContributionLedger()
	contribs.Add(0, "alice", 10)

	donors := contribs.Donors(0)
	donors[0] = "mallory"
	require.Equal(t, []string{"alice"}, contribs.Donors(0))
}
