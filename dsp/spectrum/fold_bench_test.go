package spectrum

import "testing"

func benchSpectrum(n int) []complex128 {
	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(float64(i)/10.0, float64(n-i)/10.0)
	}
	return in
}

func BenchmarkFold(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			in := benchSpectrum(testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Fold(in)
			}
		})
	}
}

func BenchmarkFoldTo(b *testing.B) {
	in := benchSpectrum(4096)
	dst := make([]float64, len(in)/2+1)

	b.SetBytes(int64(len(in) * 16))
	b.ResetTimer()

	for range b.N {
		_ = FoldTo(dst, in)
	}
}
