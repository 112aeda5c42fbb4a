package domain

import "errors"

var (
	ErrNotFound         = errors.New("fund not found")
	ErrFundInactive     = errors.New("fund inactive")
	ErrLedgerDisabled   = errors.New("ledger disabled")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrIneligibleRefund = errors.New("ineligible refund")
	ErrTransferFailed   = errors.New("transfer failed")
)
