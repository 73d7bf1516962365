package quantum

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// CollapseMode selects how a measurement picks an option.
type CollapseMode string

const (
	// ModeWeightedRandom samples from the probability vector. Default.
	ModeWeightedRandom CollapseMode = "weighted_random"

	// ModeArgmax deterministically selects the highest-probability
	// option, ties broken by earliest index.
	ModeArgmax CollapseMode = "argmax"
)

/*
MeasurementContext configures a single collapse.

PreferredOption names an option whose probability is multiplied by
PreferredWeight (default 1.0, must be > 0) before sampling. The
reweighting applies to a working copy only; a preserved state keeps its
original probabilities. Decoherence in [0,1] decays the state's
coherence after the collapse. PreserveState keeps the handle registered
for further collapses; otherwise the collapse consumes it.
*/
type MeasurementContext struct {
	Mode            CollapseMode
	PreferredOption string
	PreferredWeight float64
	Decoherence     float64
	PreserveState   bool
	Seed            *uint64
}

/*
Measurement is the outcome of collapsing a superposition: the chosen
option, the probability mass it held at sampling time, and the
post-collapse coherence. State is the surviving state view when the
collapse preserved it, nil when the handle was consumed.
*/
type Measurement struct {
	Option      Option
	Probability float64
	Coherence   float64
	Mode        CollapseMode
	Decoherence float64
	Handle      string
	Preserved   bool
	State       *Superposition
}

/*
measure selects one option from the state under the given context. The
stored probability vector is never mutated; preference reweighting
happens on a working copy.
*/
func measure(sp *Superposition, mctx MeasurementContext, rng *rand.Rand) (int, float64, error) {
	probs := append([]float64(nil), sp.Probabilities...)

	if mctx.PreferredOption != "" {
		weight := mctx.PreferredWeight
		if weight == 0 {
			weight = DefaultWeight
		}
		if weight <= 0 {
			return 0, 0, fmt.Errorf("preferred weight %v: %w", mctx.PreferredWeight, ErrInvalidWeight)
		}
		if idx := sp.indexOf(mctx.PreferredOption); idx >= 0 {
			probs[idx] *= weight
			probs = normalize(probs)
		}
	}

	var idx int
	switch mctx.Mode {
	case ModeArgmax:
		idx = argmax(probs)
	case ModeWeightedRandom, "":
		sampler := sampleuv.NewWeighted(probs, rng)
		picked, ok := sampler.Take()
		if !ok {
			// Total mass can only vanish here through floating-point
			// underflow; argmax is still well-defined.
			picked = argmax(probs)
		}
		idx = picked
	default:
		idx = argmax(probs)
	}

	return idx, probs[idx], nil
}

// argmax returns the index of the largest probability, earliest index
// winning ties.
func argmax(probs []float64) int {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best
}

// decay applies the decoherence rule coherence *= (1 - d/2), floored
// at zero.
func decay(coherence, decoherence float64) float64 {
	return clamp01(coherence * (1 - decoherence/2))
}
