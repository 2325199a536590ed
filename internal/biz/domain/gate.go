package domain

import "sync"

// Gate is the switch enabling or disabling all forwarding.
// It starts enabled; persisted state may overwrite that at startup.
type Gate struct {
	mu      sync.Mutex
	enabled bool
}

// NewGate returns a gate in the default enabled state.
func NewGate() *Gate {
	return &Gate{enabled: true}
}

// Enabled reports the current state.
func (g *Gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

// Enable switches forwarding on.
func (g *Gate) Enable() {
	g.Set(true)
}

// Disable switches forwarding off.
func (g *Gate) Disable() {
	g.Set(false)
}

// Set forces the gate to the given state.
func (g *Gate) Set(enabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = enabled
}

// Toggle flips the gate and returns the new state.
func (g *Gate) Toggle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = !g.enabled
	return g.enabled
}
