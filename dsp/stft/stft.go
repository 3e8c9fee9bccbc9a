package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-stft/dsp/framer"
	"github.com/cwbudde/algo-stft/dsp/spectrum"
	"github.com/cwbudde/algo-stft/dsp/window"
)

// Reference configuration.
const (
	// FrameSize is the number of samples per transform.
	FrameSize = 4096

	// Overlap is the number of samples shared between consecutive frames.
	Overlap = FrameSize - FrameSize/3

	// HopSize is the number of new samples between consecutive frames.
	HopSize = FrameSize - Overlap

	// DefaultScale normalizes int16 samples by the maximum positive
	// value, 32767. The negative extreme maps slightly below -1; this
	// matches long-standing behavior and only affects absolute, not
	// relative, power values.
	DefaultScale = 1.0 / 32767
)

// Processor is a streaming STFT pipeline with a fixed frame size and hop.
//
// It owns its framer and FFT plan exclusively and is not safe for
// concurrent use. All per-frame scratch memory is allocated once at
// construction; only the folded spectrum handed to the consumer is a
// fresh allocation per frame.
type Processor struct {
	frm  *framer.Fixed
	plan *algofft.Plan[complex128]
	win  []float64

	// timeFrame holds the windowed frame and, after the in-place forward
	// transform, the complex spectrum.
	timeFrame []complex128
}

// New returns a Processor in the reference configuration: frame size 4096,
// hop 4096/3, scaled Hamming window with sample normalization 1/32767.
func New() *Processor {
	p, err := NewWithConfig(FrameSize, HopSize)
	if err != nil {
		// The reference constants always form a valid configuration.
		panic("stft: " + err.Error())
	}
	return p
}

// NewWithConfig returns a Processor with a custom frame and hop size.
//
// frameSize must be a power of two (the radix-2 transform plan supports no
// other sizes) and hopSize must be in [1, frameSize]. Violations are
// reported as errors wrapping [ErrInvalidConfig]; this is the only failure
// point of the pipeline, per-frame processing cannot fail afterwards.
func NewWithConfig(frameSize, hopSize int) (*Processor, error) {
	if frameSize <= 0 || !isPowerOf2(frameSize) {
		return nil, fmt.Errorf("%w: frame size must be a power of two: %d", ErrInvalidConfig, frameSize)
	}
	if hopSize <= 0 || hopSize > frameSize {
		return nil, fmt.Errorf("%w: hop size must be in [1, %d]: %d", ErrInvalidConfig, frameSize, hopSize)
	}

	frm, err := framer.New(frameSize, hopSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	plan, err := algofft.NewPlan64(frameSize)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create FFT plan: %v", ErrInvalidConfig, err)
	}

	win, err := window.Hamming(frameSize, DefaultScale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Processor{
		frm:       frm,
		plan:      plan,
		win:       win,
		timeFrame: make([]complex128, frameSize),
	}, nil
}

// FrameSize returns the number of samples per transform.
func (p *Processor) FrameSize() int {
	return p.frm.FrameSize()
}

// HopSize returns the number of new samples between consecutive frames.
func (p *Processor) HopSize() int {
	return p.frm.HopSize()
}

// Bins returns the number of bins per delivered power spectrum,
// FrameSize/2 + 1.
func (p *Processor) Bins() int {
	return p.frm.FrameSize()/2 + 1
}

// Window returns a copy of the scaled window coefficients.
func (p *Processor) Window() []float64 {
	return append([]float64(nil), p.win...)
}

// Consume feeds samples into the pipeline and invokes consumer once per
// complete frame, synchronously and in stream order, before returning.
//
// samples may be any length, including empty; no frame is delivered until
// FrameSize samples have accumulated, and leftovers are retained across
// calls. Each delivered power spectrum has Bins() values, is freshly
// allocated, and is never reused or mutated by the pipeline: the consumer
// may retain it. Panics raised by the consumer propagate to the caller.
func (p *Processor) Consume(samples []int16, consumer func(power []float64)) {
	p.frm.Process(samples, func(frame []int16) {
		for i, s := range frame {
			p.timeFrame[i] = complex(float64(s)*p.win[i], 0)
		}

		// Buffer lengths are fixed at construction, so the in-place
		// forward transform cannot fail.
		_ = p.plan.Forward(p.timeFrame, p.timeFrame)

		consumer(spectrum.Fold(p.timeFrame))
	})
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
