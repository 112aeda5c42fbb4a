package treasury

import (
	"context"
	"fmt"
	"sync"
)

// MemoryGateway keeps balances in memory. It backs tests and the dev mode
// where no transfer journal database is configured.
type MemoryGateway struct {
	mu       sync.Mutex
	balances map[string]int64
	rejected map[string]error
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		balances: make(map[string]int64),
		rejected: make(map[string]error),
	}
}

// RejectPayee makes every batch containing a payment to addr fail with err.
func (g *MemoryGateway) RejectPayee(addr string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rejected[addr] = err
}

// Execute applies the batch only if every payment is accepted.
func (g *MemoryGateway) Execute(ctx context.Context, fundID int64, payments []Payment) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range payments {
		if err, ok := g.rejected[p.To]; ok {
			return fmt.Errorf("pay %s: %w", p.To, err)
		}
		if p.Amount < 0 {
			return fmt.Errorf("pay %s: negative amount %d", p.To, p.Amount)
		}
	}
	for _, p := range payments {
		g.balances[p.To] += p.Amount
	}
	return nil
}

// Balance returns the total paid out to addr so far.
func (g *MemoryGateway) Balance(addr string) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.balances[addr]
}
