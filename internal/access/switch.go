package access

import "sync"

// Switch is the process-wide activation flag gating every mutating ledger
// operation. It is constructed once at startup and only flips through
// Enable/Disable, which the API restricts to the admin.
type Switch struct {
	mu      sync.RWMutex
	enabled bool
}

func NewSwitch(enabled bool) *Switch {
	return &Switch{enabled: enabled}
}

func (s *Switch) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

func (s *Switch) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
}

func (s *Switch) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}
