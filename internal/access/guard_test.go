package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fundledger/internal/domain"
)

type fakeFundReader struct {
	funds  map[int64]domain.Fund
	donors map[int64]map[string]bool
}

func (f *fakeFundReader) Fund(id int64) (domain.Fund, error) {
	fund, ok := f.funds[id]
	if !ok {
		return domain.Fund{}, domain.ErrNotFound
	}
	return fund, nil
}

func (f *fakeFundReader) HasContributed(fundID int64, contributor string) bool {
	return f.donors[fundID][contributor]
}

func newFakeReader() *fakeFundReader {
	return &fakeFundReader{
		funds: map[int64]domain.Fund{
			0: {ID: 0, Owner: "alice"},
		},
		donors: map[int64]map[string]bool{
			0: {"bob": true},
		},
	}
}

func TestGuard_IsAdmin(t *testing.T) {
	t.Parallel()

	guard := NewGuard("root", newFakeReader())
	require.True(t, guard.IsAdmin("root"))
	require.False(t, guard.IsAdmin("alice"))
	require.False(t, guard.IsAdmin(""))
}

func TestGuard_IsOwner(t *testing.T) {
	t.Parallel()

	guard := NewGuard("root", newFakeReader())
	require.True(t, guard.IsOwner("alice", 0))
	require.False(t, guard.IsOwner("bob", 0))
	require.False(t, guard.IsOwner("alice", 99))
	require.False(t, guard.IsOwner("", 0))
}

func TestGuard_IsDonorOrOwner(t *testing.T) {
	t.Parallel()

	guard := NewGuard("root", newFakeReader())
	require.True(t, guard.IsDonorOrOwner("bob", 0), "donor qualifies")
	require.True(t, guard.IsDonorOrOwner("alice", 0), "owner qualifies")
	require.False(t, guard.IsDonorOrOwner("carol", 0))
	require.False(t, guard.IsDonorOrOwner("", 0))
}

func TestSwitch_Toggles(t *testing.T) {
	t.Parallel()

	sw := NewSwitch(true)
	require.True(t, sw.Enabled())
	sw.Disable()
	require.False(t, sw.Enabled())
	sw.Enable()
	require.True(t, sw.Enabled())
}
