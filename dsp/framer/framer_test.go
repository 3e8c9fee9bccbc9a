package framer

import (
	"errors"
	"testing"
)

func collectFrames(f *Fixed, samples []int16) [][]int16 {
	var frames [][]int16
	f.Process(samples, func(frame []int16) {
		frames = append(frames, append([]int16(nil), frame...))
	})
	return frames
}

func rampSignal(n int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(i % 1000)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name      string
		frameSize int
		hopSize   int
		wantErr   error
	}{
		{"valid", 8, 4, nil},
		{"valid full hop", 8, 8, nil},
		{"zero frame", 0, 1, ErrInvalidFrameSize},
		{"negative frame", -4, 1, ErrInvalidFrameSize},
		{"zero hop", 8, 0, ErrInvalidHopSize},
		{"hop exceeds frame", 8, 9, ErrInvalidHopSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := New(tc.frameSize, tc.hopSize)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("New(%d, %d) failed: %v", tc.frameSize, tc.hopSize, err)
				}
				if f.FrameSize() != tc.frameSize || f.HopSize() != tc.hopSize {
					t.Fatalf("accessors = %d, %d", f.FrameSize(), f.HopSize())
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("New(%d, %d) error = %v, want %v", tc.frameSize, tc.hopSize, err, tc.wantErr)
			}
		})
	}
}

func TestProcessEmptyInput(t *testing.T) {
	f, err := New(8, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	frames := collectFrames(f, nil)
	if len(frames) != 0 {
		t.Fatalf("got %d frames from empty input, want 0", len(frames))
	}
}

func TestProcessBelowFrameSize(t *testing.T) {
	f, err := New(8, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	frames := collectFrames(f, rampSignal(7))
	if len(frames) != 0 {
		t.Fatalf("got %d frames, want 0", len(frames))
	}
	if f.Pending() != 7 {
		t.Fatalf("Pending = %d, want 7", f.Pending())
	}
}

func TestProcessExactFrame(t *testing.T) {
	f, err := New(8, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	frames := collectFrames(f, rampSignal(8))
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}

	for i, v := range frames[0] {
		if v != int16(i) {
			t.Fatalf("frame[0][%d] = %d, want %d", i, v, i)
		}
	}

	// Leftover is frameSize - hopSize samples.
	if f.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", f.Pending())
	}
}

func TestProcessOverlapOffsets(t *testing.T) {
	f, err := New(8, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	frames := collectFrames(f, rampSignal(20))
	// Frame starts advance by the hop; 15 is the first start without a
	// full 8 samples remaining.
	wantStarts := []int{0, 3, 6, 9, 12}
	if len(frames) != len(wantStarts) {
		t.Fatalf("got %d frames, want %d", len(frames), len(wantStarts))
	}

	for n, start := range wantStarts {
		for i, v := range frames[n] {
			if v != int16(start+i) {
				t.Fatalf("frame[%d][%d] = %d, want %d", n, i, v, start+i)
			}
		}
	}
}

func TestStreamingEquivalence(t *testing.T) {
	signal := rampSignal(100)

	whole, err := New(16, 5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	wholeFrames := collectFrames(whole, signal)

	splits := [][]int{
		{50, 50},
		{1, 99},
		{99, 1},
		{10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
		{3, 0, 17, 80},
	}

	for _, split := range splits {
		chunked, err := New(16, 5)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		var chunkedFrames [][]int16
		pos := 0
		for _, n := range split {
			chunked.Process(signal[pos:pos+n], func(frame []int16) {
				chunkedFrames = append(chunkedFrames, append([]int16(nil), frame...))
			})
			pos += n
		}

		if len(chunkedFrames) != len(wholeFrames) {
			t.Fatalf("split %v: got %d frames, want %d", split, len(chunkedFrames), len(wholeFrames))
		}

		for n := range wholeFrames {
			for i := range wholeFrames[n] {
				if chunkedFrames[n][i] != wholeFrames[n][i] {
					t.Fatalf("split %v: frame %d differs at index %d", split, n, i)
				}
			}
		}
	}
}

func TestReset(t *testing.T) {
	f, err := New(8, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	f.Process(rampSignal(5), func([]int16) {})
	if f.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", f.Pending())
	}

	f.Reset()
	if f.Pending() != 0 {
		t.Fatalf("Pending after Reset = %d, want 0", f.Pending())
	}

	// Frames after Reset start from fresh input.
	frames := collectFrames(f, rampSignal(8))
	if len(frames) != 1 || frames[0][0] != 0 {
		t.Fatalf("unexpected frames after Reset: %v", frames)
	}
}
