package treasury

import "context"

// Payment is one outbound value transfer staged by the settlement engine.
type Payment struct {
	To     string
	Amount int64
	Reason string
}

// Reasons recorded on the transfer journal.
const (
	ReasonDonation    = "donation"
	ReasonOwnerPayout = "owner_payout"
	ReasonRefund      = "refund"
)

// Gateway executes a batch of outbound payments atomically: either every
// payment in the batch lands or none do. A failed batch is fatal to the
// enclosing settlement or refund call; nothing here retries.
type Gateway interface {
	Execute(ctx context.Context, fundID int64, payments []Payment) error
}
