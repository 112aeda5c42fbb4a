package access

import "fundledger/internal/domain"

// FundReader is the slice of the ledger the guard needs for ownership and
// donor checks.
type FundReader interface {
	Fund(id int64) (domain.Fund, error)
	HasContributed(fundID int64, contributor string) bool
}

// Guard answers role and ownership questions about callers. Donor checks go
// against the deduplicated donor set, not the raw payout list.
type Guard struct {
	admin string
	funds FundReader
}

func NewGuard(admin string, funds FundReader) *Guard {
	return &Guard{admin: admin, funds: funds}
}

func (g *Guard) IsAdmin(caller string) bool {
	return caller != "" && caller == g.admin
}

func (g *Guard) IsOwner(caller string, fundID int64) bool {
	if caller == "" {
		return false
	}
	fund, err := g.funds.Fund(fundID)
	if err != nil {
		return false
	}
	return fund.Owner == caller
}

func (g *Guard) IsDonorOrOwner(caller string, fundID int64) bool {
	if caller == "" {
		return false
	}
	if g.funds.HasContributed(fundID, caller) {
		return true
	}
	return g.IsOwner(caller, fundID)
}
