// Command stftinfo prints the streaming STFT pipeline configuration and
// optionally pushes a synthesized sine through it.
//
// Usage:
//
//	stftinfo [flags]
//
// Without flags it prints the reference configuration (frame size, hop,
// bin layout) for the given sample rate.
//
// Examples:
//
//	stftinfo
//	stftinfo -rate 11025
//	stftinfo -rate 44100 -sine 128 -frames 4
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-stft/dsp/core"
	"github.com/cwbudde/algo-stft/dsp/stft"
	"github.com/cwbudde/algo-stft/dsp/window"
	"github.com/cwbudde/algo-stft/stats/frequency"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz for frequency-valued output")
	sineBin := flag.Int("sine", -1, "push a sine aligned to this FFT bin through the pipeline")
	amp := flag.Float64("amp", 16000, "sine amplitude in int16 sample units")
	frames := flag.Int("frames", 1, "number of frames to synthesize for -sine")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stftinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the streaming STFT configuration and, with -sine, per-frame\n")
		fmt.Fprintf(os.Stderr, "spectrum statistics for a synthesized bin-aligned sine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stftinfo -rate 11025\n")
		fmt.Fprintf(os.Stderr, "  stftinfo -rate 44100 -sine 128 -frames 4\n")
	}
	flag.Parse()

	if *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: sample rate must be > 0\n")
		os.Exit(1)
	}

	p := stft.New()
	printConfig(p, *rate)

	if *sineBin < 0 {
		return
	}

	if *sineBin >= p.Bins() {
		fmt.Fprintf(os.Stderr, "error: sine bin must be in [0, %d)\n", p.Bins())
		os.Exit(1)
	}
	if *frames <= 0 {
		fmt.Fprintf(os.Stderr, "error: frame count must be > 0\n")
		os.Exit(1)
	}

	fmt.Println()
	runSine(p, *sineBin, *amp, *frames, *rate)
}

func printConfig(p *stft.Processor, rate float64) {
	enbw, err := window.EquivalentNoiseBandwidth(p.Window())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: window analysis failed: %v\n", err)
		os.Exit(1)
	}

	frameSize := p.FrameSize()
	hopSize := p.HopSize()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frame size\t%d samples\t%.2f ms\n", frameSize, 1000*float64(frameSize)/rate)
	fmt.Fprintf(tw, "Hop size\t%d samples\t%.2f ms\n", hopSize, 1000*float64(hopSize)/rate)
	fmt.Fprintf(tw, "Overlap\t%d samples\t%.1f %%\n", frameSize-hopSize, 100*float64(frameSize-hopSize)/float64(frameSize))
	fmt.Fprintf(tw, "Bins\t%d\t\n", p.Bins())
	fmt.Fprintf(tw, "Bin width\t%.4f Hz\t\n", rate/float64(frameSize))
	fmt.Fprintf(tw, "Window ENBW\t%.4f bins\t%.4f Hz\n", enbw, enbw*rate/float64(frameSize))
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func runSine(p *stft.Processor, bin int, amp float64, frames int, rate float64) {
	frameSize := p.FrameSize()
	length := frameSize + (frames-1)*p.HopSize()

	samples := make([]int16, length)
	step := 2 * math.Pi * float64(bin) / float64(frameSize)
	for i := range samples {
		samples[i] = int16(math.Round(amp * math.Sin(step*float64(i))))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frame\tPeak bin\tPeak [Hz]\tPeak [dB]\tCentroid [Hz]\tFlatness\n")
	fmt.Fprintf(tw, "-----\t--------\t---------\t---------\t-------------\t--------\n")

	n := 0
	p.Consume(samples, func(power []float64) {
		s := frequency.Calculate(power, rate)
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%.2f\t%.2e\n",
			n, s.PeakBin, s.PeakFreq, core.LinearPowerToDB(s.Peak), s.Centroid, s.Flatness)
		n++
	})

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
