// Package framer slices an unbounded stream of int16 samples into
// fixed-size, fixed-hop overlapping frames.
//
// A Fixed framer buffers incoming samples across calls and invokes a
// callback once per complete frame, preserving arrival order. Leftover
// samples past the last emitted frame are retained for the next call,
// so feeding a stream in arbitrary chunks yields the same frames as
// feeding it whole.
package framer

import (
	"errors"
	"fmt"
)

// Errors returned by framer construction.
var (
	ErrInvalidFrameSize = errors.New("framer: frame size must be > 0")
	ErrInvalidHopSize   = errors.New("framer: hop size must be in [1, frame size]")
)

// Fixed is a fixed-size, fixed-hop overlapping framer.
//
// It is not safe for concurrent use; each instance is owned by a single
// processing pipeline.
type Fixed struct {
	frameSize int
	hopSize   int

	// Leftover samples carried across Process calls plus any samples of
	// the current call that have not yet completed a frame.
	buf []int16
}

// New returns a framer emitting frames of frameSize samples, advancing
// hopSize samples between consecutive frames. A hop smaller than the
// frame size yields overlapping frames.
func New(frameSize, hopSize int) (*Fixed, error) {
	if frameSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameSize, frameSize)
	}
	if hopSize <= 0 || hopSize > frameSize {
		return nil, fmt.Errorf("%w: %d (frame size %d)", ErrInvalidHopSize, hopSize, frameSize)
	}

	return &Fixed{
		frameSize: frameSize,
		hopSize:   hopSize,
		buf:       make([]int16, 0, frameSize),
	}, nil
}

// FrameSize returns the number of samples per emitted frame.
func (f *Fixed) FrameSize() int {
	return f.frameSize
}

// HopSize returns the number of samples advanced between frames.
func (f *Fixed) HopSize() int {
	return f.hopSize
}

// Pending returns the number of buffered samples not yet emitted as the
// start of a complete frame.
func (f *Fixed) Pending() int {
	return len(f.buf)
}

// Process buffers samples and invokes onFrame once per complete frame, in
// order. samples may be any length, including empty; the first calls may
// emit zero frames until frameSize samples have accumulated.
//
// The slice passed to onFrame always has length FrameSize and aliases the
// framer's internal buffer: it is only valid for the duration of the
// callback and must be copied if retained.
func (f *Fixed) Process(samples []int16, onFrame func(frame []int16)) {
	f.buf = append(f.buf, samples...)

	start := 0
	for len(f.buf)-start >= f.frameSize {
		onFrame(f.buf[start : start+f.frameSize])
		start += f.hopSize
	}

	// Compact consumed samples so the buffer holds at most one frame of
	// leftovers between calls.
	if start > 0 {
		n := copy(f.buf, f.buf[start:])
		f.buf = f.buf[:n]
	}
}

// Reset discards all buffered samples, as if the framer were newly
// constructed. Frame and hop sizes are unchanged.
func (f *Fixed) Reset() {
	f.buf = f.buf[:0]
}
