// SPDX-License-Identifier: MIT

package scheduling

import "math/rand"

// Efficiency factors are drawn uniformly from [minEfficiency, minEfficiency+1).
const minEfficiency = 0.5

// rngFromSeed returns a deterministic *rand.Rand; seed 0 selects defaultSeed.
// The stream is used once, during construction, and never shared.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// drawEfficiencies returns n factors in [0.5, 1.5).
func drawEfficiencies(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = minEfficiency + rng.Float64()
	}

	return out
}
