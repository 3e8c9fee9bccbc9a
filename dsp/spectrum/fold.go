package spectrum

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

var errEmptySpectrum = errors.New("spectrum: empty input")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Fold reduces a full complex spectrum of length N to a one-sided power
// spectrum of length N/2 + 1, with out[i] = re(in[i])^2 + im(in[i])^2.
//
// For real-valued time-domain input the spectrum is conjugate-symmetric,
// so the discarded upper half carries no information. Values are raw
// power: no square root and no normalization by N is applied. The result
// is freshly allocated on every call; callers may retain it.
//
// Fold returns nil for empty input.
func Fold(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in)/2+1)
	// Output length is correct by construction.
	_ = FoldTo(out, in)
	return out
}

// FoldTo is the allocation-free variant of [Fold]. dst must have length
// len(in)/2 + 1.
//
// Scratch buffers are pooled internally, so in steady state this performs
// no allocation at all.
func FoldTo(dst []float64, in []complex128) error {
	if len(in) == 0 {
		return errEmptySpectrum
	}

	bins := len(in)/2 + 1
	if len(dst) != bins {
		return fmt.Errorf("spectrum: fold output length must be %d: %d", bins, len(dst))
	}

	re, im, buf := getScratch(bins)
	for i := range bins {
		c := in[i]
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(dst, re, im)
	putScratch(buf)
	return nil
}

// Power returns |X[k]|^2 for every bin of a full complex spectrum.
//
// Unlike [Fold] it keeps the redundant upper half, which is occasionally
// useful for inspecting raw FFT output.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}
