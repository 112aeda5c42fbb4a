package ledger

import (
	"time"

	"fundledger/internal/domain"
)

// FundRegistry owns the fund collection and assigns ids sequentially
// starting at 0. Funds are never deleted; closed funds stay queryable.
// The registry is not safe for concurrent use on its own; the Ledger
// facade serializes access.
type FundRegistry struct {
	nextID int64
	funds  map[int64]*domain.Fund
	order  []int64
}

func NewFundRegistry() *FundRegistry {
	return &FundRegistry{funds: make(map[int64]*domain.Fund)}
}

// Create allocates the next id and stores a new active fund. No validation
// of target or deadline happens here; the registry accepts whatever the
// caller sends.
func (r *FundRegistry) Create(title, description string, end time.Time, target int64, recipient, owner string, now time.Time) *domain.Fund {
	fund := &domain.Fund{
		ID:                r.nextID,
		Title:             title,
		Description:       description,
		End:               end,
		Target:            target,
		DonationRecipient: recipient,
		Owner:             owner,
		Active:            true,
		CreatedAt:         now,
	}
	r.nextID++
	r.funds[fund.ID] = fund
	r.order = append(r.order, fund.ID)
	return fund
}

// Get returns the live fund record for mutation by the ledger.
func (r *FundRegistry) Get(id int64) (*domain.Fund, error) {
	fund, ok := r.funds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return fund, nil
}

// Snapshot returns a detached copy of one fund.
func (r *FundRegistry) Snapshot(id int64) (domain.Fund, error) {
	fund, ok := r.funds[id]
	if !ok {
		return domain.Fund{}, domain.ErrNotFound
	}
	return fund.Clone(), nil
}

// All returns detached copies of every fund in creation order.
func (r *FundRegistry) All() []domain.Fund {
	out := make([]domain.Fund, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.funds[id].Clone())
	}
	return out
}
