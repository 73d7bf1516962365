package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

/*
Superposition is a normalized probability distribution over a set of
options, together with the complex amplitudes that carry it. Options,
probabilities and amplitudes are index-aligned; order is significant
for tie-breaks. The state is immutable after construction except for
coherence decay applied by preserved collapses.

Invariants:
  - all probabilities are >= 0 and sum to 1.0 within 1e-9
  - |Amplitudes[i]|² == Probabilities[i] for every index
  - Coherence stays within [0,1]
*/
type Superposition struct {
	Options       []Option
	Probabilities []float64
	Amplitudes    []complex128
	Coherence     float64
	Events        []InterferenceEvent

	// Collapses on the same handle are mutually exclusive; the registry
	// map itself is only locked for lookup and removal.
	mu sync.Mutex
}

/*
newSuperposition builds a superposition from weighted options and a
build context. Adjustments are applied in a fixed order: additive bias
on the raw weights, normalization, interference transfer on the
normalized probabilities, renormalization, then amplitude generation
with phase jitter scaled by the context's phase noise.

A non-positive total after adjustments falls back to a uniform
distribution rather than erroring.
*/
func newSuperposition(options []Option, ctx BuildContext, rng *rand.Rand) (*Superposition, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptionSet
	}

	weights := make([]float64, len(options))
	for i, opt := range options {
		if opt.Weight < 0 {
			return nil, fmt.Errorf("option %q: weight %v: %w", opt.ID, opt.Weight, ErrInvalidWeight)
		}
		weights[i] = opt.Weight
		if bias, ok := ctx.Bias[opt.ID]; ok {
			// Bias is additive; a bias that drives the weight negative
			// contributes zero mass instead of a negative probability.
			weights[i] = math.Max(0, weights[i]+bias)
		}
	}

	sp := &Superposition{
		Options:       copyOptions(options),
		Probabilities: normalize(weights),
		Coherence:     DefaultCoherence,
	}
	if ctx.Coherence != nil {
		sp.Coherence = clamp01(*ctx.Coherence)
	}

	for _, pulse := range ctx.Interference {
		sp.applyInterference(pulse)
	}
	if len(ctx.Interference) > 0 {
		sp.Probabilities = normalize(sp.Probabilities)
	}

	sp.generateAmplitudes(ctx.PhaseNoise, rng)
	if ctx.PhaseNoise > 0 {
		// Monotonic in the noise level, bounded so coherence never
		// leaves [0,1].
		sp.Coherence = clamp01(sp.Coherence / (1 + ctx.PhaseNoise))
	}

	return sp, nil
}

// generateAmplitudes derives amplitude_i = sqrt(p_i) * e^(i*phase_i),
// with the phase drawn from the seeded source and scaled by the noise
// level. Zero noise yields purely real amplitudes.
func (sp *Superposition) generateAmplitudes(phaseNoise float64, rng *rand.Rand) {
	sp.Amplitudes = make([]complex128, len(sp.Probabilities))
	for i, p := range sp.Probabilities {
		var phase float64
		if phaseNoise > 0 {
			phase = rng.Float64() * 2 * math.Pi * phaseNoise
		}
		sp.Amplitudes[i] = cmplx.Rect(math.Sqrt(p), phase)
	}
}

func (sp *Superposition) indexOf(id string) int {
	for i, opt := range sp.Options {
		if opt.ID == id {
			return i
		}
	}
	return -1
}

// view returns a copy safe to hand to callers: slices are duplicated so
// the registered state cannot be mutated from outside.
func (sp *Superposition) view() *Superposition {
	out := &Superposition{
		Options:       copyOptions(sp.Options),
		Probabilities: append([]float64(nil), sp.Probabilities...),
		Amplitudes:    append([]complex128(nil), sp.Amplitudes...),
		Coherence:     sp.Coherence,
		Events:        append([]InterferenceEvent(nil), sp.Events...),
	}
	return out
}

// normalize rescales weights into a probability vector summing to 1.
// A non-positive total falls back to the uniform distribution.
func normalize(weights []float64) []float64 {
	probs := append([]float64(nil), weights...)
	total := floats.Sum(probs)
	if total <= 0 {
		uniform := 1.0 / float64(len(probs))
		for i := range probs {
			probs[i] = uniform
		}
		return probs
	}
	floats.Scale(1/total, probs)
	return probs
}

func copyOptions(options []Option) []Option {
	return append([]Option(nil), options...)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
