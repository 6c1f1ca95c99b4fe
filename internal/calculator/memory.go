package calculator

import "sync"

// Memory is the single M+/M-/MR/MC register shared by every calculator of a process.
// Each operation holds the lock, so Add and Subtract are atomic read-modify-writes.
type Memory struct {
	mu    sync.Mutex
	value float64
}

// NewMemory creates a register holding zero
func NewMemory() *Memory {
	return &Memory{}
}

// Store overwrites the register
func (m *Memory) Store(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value = v
}

// Recall returns the register value
func (m *Memory) Recall() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.value
}

// Clear resets the register to zero
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value = 0
}

// Add adds v to the register
func (m *Memory) Add(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value += v
}

// Subtract subtracts v from the register
func (m *Memory) Subtract(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value -= v
}
