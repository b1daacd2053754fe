package store

import "sync"

// Persistence is the single-entry key-value medium the store snapshots
// into. Read reports absence separately from failure so a fresh
// installation is not treated as corruption.
type Persistence interface {
	Read() (payload []byte, present bool, err error)
	Write(payload []byte) error
	Close() error
}

// Memory is a single-slot adapter for tests and ephemeral runs.
type Memory struct {
	mu      sync.Mutex
	payload []byte
	present bool
}

func NewMemory() *Memory {
	return &Memory{}
}

// Seed preloads a payload, simulating previously persisted state.
func (m *Memory) Seed(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = append([]byte(nil), payload...)
	m.present = true
}

func (m *Memory) Read() ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present {
		return nil, false, nil
	}
	return append([]byte(nil), m.payload...), true, nil
}

func (m *Memory) Write(payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = append([]byte(nil), payload...)
	m.present = true
	return nil
}

func (m *Memory) Close() error { return nil }
