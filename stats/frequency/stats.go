// Package frequency computes descriptive statistics over one-sided power
// spectra as delivered by the STFT pipeline.
//
// All functions expect raw power values (|X_i|^2, linear scale, NOT dB)
// over bins 0 (DC) to Nyquist, length FFTSize/2 + 1. The frequency of
// bin i is:
//
//	f_i = i * sampleRate / (2 * (binCount - 1))
package frequency

import "math"

// Stats holds statistics computed from a one-sided power spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 power
	Peak     float64 // largest bin power
	PeakBin  int
	PeakFreq float64 // Hz, 0 if sampleRate unknown
	Total    float64 // sum of bin powers
	Average  float64
	Centroid float64 // power-weighted mean frequency (Hz)
	Flatness float64 // Wiener entropy of the power spectrum, 0..1
}

// BinFreq returns the frequency in Hz of bin i for a one-sided spectrum
// with binCount bins (fftSize = 2*(binCount-1)).
func BinFreq(i int, sampleRate float64, binCount int) float64 {
	if binCount < 2 {
		return 0
	}
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all statistics from a one-sided power spectrum.
// sampleRate may be zero if only bin-domain results are needed; the
// frequency-valued fields are then zero.
func Calculate(power []float64, sampleRate float64) Stats {
	n := len(power)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.DC = power[0]
	s.Peak = power[0]

	for i, v := range power {
		s.Total += v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
	}

	s.Average = s.Total / float64(n)
	s.PeakFreq = BinFreq(s.PeakBin, sampleRate, n)
	s.Centroid = centroid(power, sampleRate, s.Total)
	s.Flatness = flatness(power)

	return s
}

// Centroid returns the power-weighted spectral centroid in Hz.
//
//	centroid = sum(f_i * P_i) / sum(P_i)
func Centroid(power []float64, sampleRate float64) float64 {
	sum := 0.0
	for _, v := range power {
		sum += v
	}
	return centroid(power, sampleRate, sum)
}

func centroid(power []float64, sampleRate float64, total float64) float64 {
	n := len(power)
	if n < 2 || total == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range power {
		weightedSum += BinFreq(i, sampleRate, n) * v
	}
	return weightedSum / total
}

// Flatness returns the spectral flatness (Wiener entropy) in the range
// 0..1: the ratio of geometric to arithmetic mean of the bin powers.
//
// The DC bin (index 0) is excluded. A flatness near 1 indicates a
// noise-like spectrum, near 0 a tonal one. If any considered bin is zero
// the geometric mean, and hence the flatness, is zero.
func Flatness(power []float64) float64 {
	return flatness(power)
}

func flatness(power []float64) float64 {
	n := len(power)
	if n < 2 {
		return 0
	}

	bins := n - 1
	sumLin := 0.0
	sumLog := 0.0
	hasZero := false

	for i := 1; i < n; i++ {
		v := power[i]
		sumLin += v
		if v > 0 {
			sumLog += math.Log(v)
		} else {
			hasZero = true
		}
	}

	meanLin := sumLin / float64(bins)
	if meanLin == 0 || hasZero {
		return 0
	}

	return math.Exp(sumLog/float64(bins)) / meanLin
}
