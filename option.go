package quantum

import "time"

/*
Option is a caller-supplied candidate outcome with an identity and a
non-negative weight. The engine never interprets Value; identity and
weight are the only fields it reads.
*/
type Option struct {
	ID     string
	Value  any
	Weight float64
}

// NewOption creates an option carrying the default weight of 1.0.
func NewOption(id string, value any) Option {
	return Option{ID: id, Value: value, Weight: DefaultWeight}
}

/*
Interference describes a pairwise adjustment between two options during
superposition construction. Strength lies in [-1,1]: positive strength
transfers probability mass from Source toward Target, negative strength
repels mass from Target back to Source.
*/
type Interference struct {
	Source   string
	Target   string
	Strength float64
}

/*
InterferenceEvent is an immutable ledger record of one applied
interference pulse. Events are appended in application order; the
sequence number is monotonically increasing within a single state.
*/
type InterferenceEvent struct {
	Interference
	Sequence  uint64
	Timestamp time.Time
}

/*
BuildContext carries the contextual adjustments folded into a
superposition at construction time.

Bias maps option IDs to additive weight adjustments, applied before
normalization. Interference pulses are applied to the normalized
probabilities in order. PhaseNoise (>= 0) scales the random phase
jitter of the generated amplitudes and proportionally reduces the
state's coherence, bounded so coherence stays in [0,1].

Seed, when non-nil, makes phase generation reproducible. Coherence,
when non-nil, overrides the default starting coherence of 1.0.
*/
type BuildContext struct {
	Bias         map[string]float64
	Interference []Interference
	PhaseNoise   float64
	Coherence    *float64
	Seed         *uint64
}
