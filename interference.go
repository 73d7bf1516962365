package quantum

import (
	"math"
	"time"
)

/*
applyInterference redistributes probability mass between two options
during construction. Positive strength transfers mass from source
toward target; negative strength repels mass from target back to
source. Mass is conserved, so a single pulse cannot break the
normalization invariant.

Pulses naming unknown options are ignored. Every applied pulse is
recorded verbatim on the append-only event ledger, so a state's full
interference history is replayable in order.
*/
func (sp *Superposition) applyInterference(pulse Interference) {
	src := sp.indexOf(pulse.Source)
	tgt := sp.indexOf(pulse.Target)
	if src < 0 || tgt < 0 || src == tgt {
		return
	}

	strength := math.Max(-1, math.Min(1, pulse.Strength))
	if strength >= 0 {
		delta := strength * sp.Probabilities[src]
		sp.Probabilities[src] -= delta
		sp.Probabilities[tgt] += delta
	} else {
		delta := -strength * sp.Probabilities[tgt]
		sp.Probabilities[tgt] -= delta
		sp.Probabilities[src] += delta
	}

	sp.Events = append(sp.Events, InterferenceEvent{
		Interference: pulse,
		Sequence:     uint64(len(sp.Events)),
		Timestamp:    time.Now(),
	})
}
