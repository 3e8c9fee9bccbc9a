// Package testutil provides deterministic test signals and tolerance
// helpers shared by the STFT test suites.
package testutil

import (
	"math"
	"math/rand"
)

// SineAtBin generates length int16 samples of a sine whose frequency falls
// exactly on FFT bin index bin for frames of frameSize samples.
func SineAtBin(bin, frameSize int, amplitude float64, length int) []int16 {
	out := make([]int16, length)
	step := 2 * math.Pi * float64(bin) / float64(frameSize)
	for i := range out {
		out[i] = int16(math.Round(amplitude * math.Sin(step*float64(i))))
	}
	return out
}

// DeterministicNoise generates int16 white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int16((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates an int16 unit-scaled impulse at the given position.
func Impulse(length, pos int, amplitude int16) []int16 {
	out := make([]int16, length)
	if pos >= 0 && pos < length {
		out[pos] = amplitude
	}
	return out
}
