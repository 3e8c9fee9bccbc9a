// Package spectrum reduces complex FFT output to real power spectra.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides the
// one-sided power-spectrum folding used by the streaming STFT pipeline.
package spectrum
