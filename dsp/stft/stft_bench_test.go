package stft

import (
	"testing"

	"github.com/cwbudde/algo-stft/internal/testutil"
)

func BenchmarkConsume(b *testing.B) {
	chunks := []struct {
		name string
		size int
	}{
		{"hop", HopSize},
		{"frame", FrameSize},
		{"4xframe", 4 * FrameSize},
	}

	for _, testCase := range chunks {
		b.Run(testCase.name, func(b *testing.B) {
			p := New()
			samples := testutil.DeterministicNoise(3, 16000, testCase.size)

			b.SetBytes(int64(testCase.size * 2)) // int16 = 2 bytes
			b.ResetTimer()

			for range b.N {
				p.Consume(samples, func([]float64) {})
			}
		})
	}
}
