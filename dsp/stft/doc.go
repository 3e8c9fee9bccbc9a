// Package stft computes a streaming Short-Time Fourier Transform over a
// continuous stream of int16 samples.
//
// A Processor slices the incoming stream into overlapping fixed-size
// frames, applies a scaled Hamming window, runs a forward FFT, and folds
// the complex result into a one-sided power spectrum that is handed to a
// caller-supplied consumer, one callback per frame and in stream order.
//
// # Usage
//
//	p := stft.New()
//	p.Consume(samples, func(power []float64) {
//		// power has stft.FrameSize/2 + 1 bins and may be retained.
//	})
//
// Consume may be called repeatedly with successive chunks of an unbounded
// stream; leftover samples are carried across calls. A Processor is not
// safe for concurrent use.
package stft
