package ledger

// ContributionLedger tracks the cumulative amount each contributor has given
// to each fund, and the per-fund donor list. The donor list is append-only
// and ordered: one entry per contribution call, so a repeat contributor
// appears once per call. Refund payouts walk that raw list; authorization
// checks use the deduplicated set instead.
type ContributionLedger struct {
	amounts map[string]map[int64]int64
	donors  map[int64][]string
	seen    map[int64]map[string]struct{}
}

func NewContributionLedger() *ContributionLedger {
	return &ContributionLedger{
		amounts: make(map[string]map[int64]int64),
		donors:  make(map[int64][]string),
		seen:    make(map[int64]map[string]struct{}),
	}
}

// Add records one contribution. Amounts only ever accumulate; refunds pay
// out against the record without decreasing it.
func (l *ContributionLedger) Add(fundID int64, contributor string, amount int64) {
	byFund, ok := l.amounts[contributor]
	if !ok {
		byFund = make(map[int64]int64)
		l.amounts[contributor] = byFund
	}
	byFund[fundID] += amount

	l.donors[fundID] = append(l.donors[fundID], contributor)

	set, ok := l.seen[fundID]
	if !ok {
		set = make(map[string]struct{})
		l.seen[fundID] = set
	}
	set[contributor] = struct{}{}
}

// AmountOf returns the cumulative amount contributor has given to the fund.
func (l *ContributionLedger) AmountOf(contributor string, fundID int64) int64 {
	return l.amounts[contributor][fundID]
}

// Donors returns a copy of the raw donor list, duplicates included, in
// contribution order.
func (l *ContributionLedger) Donors(fundID int64) []string {
	src := l.donors[fundID]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// HasContributed answers against the deduplicated donor set.
func (l *ContributionLedger) HasContributed(fundID int64, contributor string) bool {
	_, ok := l.seen[fundID][contributor]
	return ok
}
