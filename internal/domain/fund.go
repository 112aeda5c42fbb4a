package domain

import "time"

// Fund represents a single crowdfunding campaign. Ids are assigned
// sequentially starting at 0 and are never reused.
type Fund struct {
	ID                int64
	Title             string
	Description       string
	End               time.Time
	Target            int64
	CurrentAmount     int64
	DonationRecipient string
	Owner             string
	Active            bool
	CreatedAt         time.Time
}

// Clone returns a detached copy of the fund. Read endpoints hand out clones
// so later mutations never show through previously returned values.
func (f *Fund) Clone() Fund {
	return *f
}
