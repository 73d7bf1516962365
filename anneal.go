package quantum

import (
	"math"
)

// CostFunc maps a candidate to the energy the annealer minimizes. It is
// assumed pure and is invoked synchronously on the calling goroutine;
// the engine places no timeout on it.
type CostFunc func(candidate any) float64

/*
AnnealParams tunes a single annealing run. Zero values fall back to the
engine defaults: MaxIterations 100, InitialTemperature 10.0, CoolingRate
0.95. TunnelingRate in [0,1] is added to the Metropolis acceptance
probability for worse candidates, letting the walk escape local minima.
InitialState defaults to the first candidate of the search space.
*/
type AnnealParams struct {
	InitialState       any
	MaxIterations      int
	InitialTemperature float64
	CoolingRate        float64
	TunnelingRate      float64
	Seed               *uint64
}

// Visit records one annealing step: the candidate proposed and its
// energy, whether or not the step was accepted.
type Visit struct {
	Candidate any
	Energy    float64
}

/*
AnnealingResult reports the best candidate ever observed during the
run, which is not necessarily the final accepted state. Explored echoes
the full search space; History holds one Visit per iteration.
*/
type AnnealingResult struct {
	Solution         any
	Energy           float64
	Explored         []any
	History          []Visit
	Iterations       int
	FinalTemperature float64
	TunnelingRate    float64
}

/*
anneal runs simulated annealing over a finite candidate space.

Candidates are proposed sequentially when the space fits within the
iteration budget, which guarantees every candidate is evaluated and the
global minimum is always found for small finite spaces; larger spaces
are sampled uniformly. Acceptance of a worse candidate follows
min(1, exp(-Δ/T) + tunneling); better or equal candidates are always
accepted. The temperature cools geometrically and never drops below
MinTemperature.
*/
func anneal(costFn CostFunc, space []any, params AnnealParams, cfg *Config) (*AnnealingResult, error) {
	if len(space) == 0 {
		return nil, ErrEmptySearchSpace
	}

	if costFn == nil {
		// Degenerate zero-cost landscape: every candidate ties, the
		// starting state wins. Valid but uninteresting, caller's risk.
		costFn = func(any) float64 { return 0 }
	}

	maxIterations := params.MaxIterations
	if maxIterations <= 0 {
		maxIterations = cfg.MaxIterations
	}
	temperature := params.InitialTemperature
	if temperature <= 0 {
		temperature = cfg.InitialTemperature
	}
	coolingRate := params.CoolingRate
	if coolingRate <= 0 || coolingRate > 1 {
		coolingRate = cfg.CoolingRate
	}
	tunneling := clamp01(params.TunnelingRate)

	current := params.InitialState
	if current == nil {
		current = space[0]
	}
	currentEnergy := costFn(current)

	best := current
	bestEnergy := currentEnergy

	rng := newRand(params.Seed)
	exhaustive := len(space) <= maxIterations
	history := make([]Visit, 0, maxIterations)

	for i := 0; i < maxIterations; i++ {
		var candidate any
		if exhaustive {
			candidate = space[i%len(space)]
		} else {
			candidate = space[rng.Intn(len(space))]
		}

		energy := costFn(candidate)
		delta := energy - currentEnergy

		if delta <= 0 || rng.Float64() < math.Min(1, math.Exp(-delta/temperature)+tunneling) {
			current = candidate
			currentEnergy = energy
		}

		// Best-ever tracking is independent of acceptance.
		if energy < bestEnergy {
			best = candidate
			bestEnergy = energy
		}

		history = append(history, Visit{Candidate: candidate, Energy: energy})

		temperature = math.Max(MinTemperature, temperature*coolingRate)
	}

	return &AnnealingResult{
		Solution:         best,
		Energy:           bestEnergy,
		Explored:         append([]any(nil), space...),
		History:          history,
		Iterations:       maxIterations,
		FinalTemperature: temperature,
		TunnelingRate:    tunneling,
	}, nil
}
