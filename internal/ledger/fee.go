package ledger

// DefaultFeePercent is the fixed share of every outflow routed to a fund's
// donation recipient.
const DefaultFeePercent = 2

// FeeCalculator computes the donation portion of an outgoing amount. The
// percentage is fixed at construction; there is no governance over it.
type FeeCalculator struct {
	percent int64
}

func NewFeeCalculator(percent int64) *FeeCalculator {
	if percent <= 0 {
		percent = DefaultFeePercent
	}
	return &FeeCalculator{percent: percent}
}

// Portion returns floor(amount * percent / 100). The truncating division is
// deliberate: the fee always rounds down, so the remainder keeps the cent.
func (c *FeeCalculator) Portion(amount int64) int64 {
	return amount * c.percent / 100
}
