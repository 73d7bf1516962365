package quantum

import (
	"github.com/theapemachine/errnie"
)

/*
Engine is the facade over the three quantum-inspired primitives:
superposition building, measurement collapse and annealing search. It
owns the handle registry and the activity metrics; the three engines
themselves are independent and only share this dispatch surface.

All methods are synchronous and safe for concurrent use.
*/
type Engine struct {
	config   *Config
	registry *registry
	metrics  *Metrics
}

func NewEngine(config *Config) *Engine {
	if config == nil {
		config = NewConfig()
	}
	return &Engine{
		config:   config,
		registry: newRegistry(),
		metrics:  NewMetrics(),
	}
}

/*
BuildSuperposition encodes weighted options into a normalized
probability/amplitude state, registers it, and returns the fresh handle
together with a caller-owned view of the state.
*/
func (e *Engine) BuildSuperposition(options []Option, ctx BuildContext) (string, *Superposition, error) {
	sp, err := newSuperposition(options, ctx, newRand(ctx.Seed))
	if err != nil {
		return "", nil, err
	}

	// Snapshot before registration makes the state reachable by other
	// goroutines.
	view := sp.view()

	handle := e.registry.register(sp)
	e.metrics.recordSuperposition()

	errnie.Info(
		"BuildSuperposition - handle %s, options %d, phaseNoise %v",
		handle,
		len(options),
		ctx.PhaseNoise,
	)

	return handle, view, nil
}

/*
Collapse measures a registered superposition and returns the chosen
option. A non-preserving collapse consumes the handle; a second collapse
on the same handle then fails with ErrUnknownHandle. Collapses on the
same handle are mutually exclusive, collapses on different handles
proceed in parallel.
*/
func (e *Engine) Collapse(handle string, mctx MeasurementContext) (*Measurement, error) {
	sp, err := e.registry.lookup(handle)
	if err != nil {
		return nil, err
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	// Revalidate under the state lock: a concurrent non-preserving
	// collapse may have consumed the handle between lookup and lock.
	if _, err := e.registry.lookup(handle); err != nil {
		return nil, err
	}

	idx, probability, err := measure(sp, mctx, newRand(mctx.Seed))
	if err != nil {
		return nil, err
	}

	decoherence := clamp01(mctx.Decoherence)
	coherence := decay(sp.Coherence, decoherence)

	mode := mctx.Mode
	if mode == "" {
		mode = ModeWeightedRandom
	}

	result := &Measurement{
		Option:      sp.Options[idx],
		Probability: probability,
		Coherence:   coherence,
		Mode:        mode,
		Decoherence: decoherence,
		Handle:      handle,
		Preserved:   mctx.PreserveState,
	}

	if mctx.PreserveState {
		sp.Coherence = coherence
		result.State = sp.view()
	} else {
		e.registry.remove(handle)
	}

	e.metrics.recordCollapse(decoherence)

	return result, nil
}

/*
Anneal searches a finite candidate space for the minimum-cost solution
via simulated annealing with tunneling escape. It is independent of the
superposition registry.
*/
func (e *Engine) Anneal(costFn CostFunc, space []any, params AnnealParams) (*AnnealingResult, error) {
	result, err := anneal(costFn, space, params, e.config)
	if err != nil {
		return nil, err
	}

	e.metrics.recordOptimization()

	return result, nil
}

// State returns a view of a registered superposition without collapsing
// it.
func (e *Engine) State(handle string) (*Superposition, error) {
	sp, err := e.registry.lookup(handle)
	if err != nil {
		return nil, err
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	return sp.view(), nil
}

// Metrics returns a snapshot of engine activity for host observability.
func (e *Engine) Metrics() map[string]any {
	return e.metrics.Export(e.registry.active())
}
