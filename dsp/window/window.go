// Package window provides the scaled Hamming analysis window used by the
// streaming STFT pipeline.
//
// The pipeline is fixed-function: only the symmetric Hamming shape is
// generated here. Coefficients are computed once at pipeline construction
// and reused for every frame.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Hamming returns symmetric Hamming window coefficients of the given size,
// each multiplied by scale:
//
//	w[i] = scale * (0.54 - 0.46*cos(2*pi*i/(size-1)))
//
// The scale factor folds sample normalization into the window so the hot
// path performs a single multiply per sample. A size of 1 has no defined
// phase term; it yields a single coefficient equal to scale.
func Hamming(size int, scale float64) ([]float64, error) {
	if size <= 0 {
		return nil, validateLength(size)
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = scale
		return out, nil
	}

	step := 2 * math.Pi / float64(size-1)
	for i := range out {
		out[i] = scale * (0.54 - 0.46*math.Cos(step*float64(i)))
	}

	return out, nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
//
// ENBW is invariant under uniform scaling, so coefficients produced with
// any scale factor give the same result.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
