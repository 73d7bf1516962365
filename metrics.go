package quantum

import "sync"

/*
Metrics tracks engine-level activity for host observability: how many
superpositions were built, how many optimization runs completed, and a
process-wide coherence scalar that decays with every decohering
collapse.
*/
type Metrics struct {
	mu sync.RWMutex

	SuperpositionCount int64
	OptimizationCount  int64
	CollapseCount      int64
	Coherence          float64
}

func NewMetrics() *Metrics {
	return &Metrics{Coherence: DefaultCoherence}
}

func (m *Metrics) recordSuperposition() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuperpositionCount++
}

func (m *Metrics) recordOptimization() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OptimizationCount++
}

// recordCollapse applies the measurement's decoherence to the
// process-wide coherence scalar.
func (m *Metrics) recordCollapse(decoherence float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CollapseCount++
	m.Coherence = decay(m.Coherence, decoherence)
}

// Export returns a snapshot view for hosts that poll engine state.
func (m *Metrics) Export(activeHandles int) map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]any{
		"superposition_count": m.SuperpositionCount,
		"optimization_count":  m.OptimizationCount,
		"collapse_count":      m.CollapseCount,
		"active_handles":      activeHandles,
		"coherence":           m.Coherence,
	}
}
