// Command iirinfo designs an IIR filter and prints its biquad stages and
// frequency response.
//
// Usage:
//
//	iirinfo [flags]
//
// Examples:
//
//	iirinfo -family butterworth -type lowpass -order 4 -freq 1000
//	iirinfo -family chebyshev1 -type bandpass -freq 2000 -width 500 -ripple 0.5
//	iirinfo -family chebyshev2 -type highpass -freq 300 -atten 60
//	iirinfo -family rbj -type peak -freq 1000 -q 2 -gain 6
//	iirinfo -family rbj-analog -type lowshelf -freq 200 -gain -4
//	iirinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-iir/dsp/filter/analysis"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// gridPoints is the resolution of the response scan used for the peak summary.
const gridPoints = 2048

func main() {
	var p params

	name := flag.String("family", "butterworth", "filter family (use -list to see available)")
	flag.StringVar(&p.typ, "type", "lowpass", "response type")
	flag.IntVar(&p.order, "order", 2, "analog prototype order (cascade families)")
	flag.Float64Var(&p.rate, "rate", 48000, "sample rate in Hz")
	flag.Float64Var(&p.freq, "freq", 1000, "cutoff or center frequency in Hz")
	flag.Float64Var(&p.width, "width", 500, "bandwidth in Hz (band types)")
	flag.Float64Var(&p.gain, "gain", 6, "gain in dB (peak and shelf types)")
	flag.Float64Var(&p.ripple, "ripple", 1, "passband ripple in dB (chebyshev1)")
	flag.Float64Var(&p.atten, "atten", 40, "stopband attenuation in dB (chebyshev2); shelf ripple for its shelves, below |gain|")
	flag.Float64Var(&p.q, "q", 1/math.Sqrt2, "quality factor (rbj, rbj-analog, zoelzer)")
	list := flag.Bool("list", false, "list families and their response types")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iirinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs an IIR filter and prints its stages and response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -family butterworth -type lowpass -order 4 -freq 1000\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -family chebyshev2 -type highpass -freq 300 -atten 60\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -family rbj -type peak -freq 1000 -q 2 -gain 6\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	fam, err := lookupFamily(*name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p.typ = strings.ToLower(strings.TrimSpace(p.typ))
	if !fam.supports(p.typ) {
		fmt.Fprintf(os.Stderr, "error: %s has no %q type (want one of %s)\n", fam.name, p.typ, strings.Join(fam.types, ", "))
		os.Exit(1)
	}

	coeffs, err := fam.build(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printDesign(os.Stdout, fam.name, p, coeffs); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	byName := make(map[string]family, len(registry))
	for _, f := range registry {
		byName[f.name] = f
	}

	for _, n := range familyNames() {
		fmt.Fprintf(w, "%s: %s\n", n, strings.Join(byName[n].types, " "))
	}
}

// probeFrequencies returns DC, half, one and two times freq, and Nyquist,
// sorted and limited to [0, rate/2].
func probeFrequencies(freq, rate float64) []float64 {
	nyquist := rate / 2
	seen := make(map[float64]bool)

	var out []float64

	for _, f := range []float64{0, freq / 2, freq, 2 * freq, nyquist} {
		if f < 0 || f > nyquist || seen[f] {
			continue
		}

		seen[f] = true
		out = append(out, f)
	}

	sort.Float64s(out)

	return out
}

func printDesign(w io.Writer, familyName string, p params, coeffs []biquad.Coefficients) error {
	chain := biquad.NewChain(coeffs)
	resp := analysis.FromHz(chain, p.rate)

	if _, err := fmt.Fprintf(w, "%s %s, %d sections, order %d, %g Hz\n\n",
		familyName, p.typ, chain.NumSections(), chain.Order(), p.rate); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stage\tb0\tb1\tb2\ta1\ta2\tStable\n")
	fmt.Fprintf(tw, "-----\t--\t--\t--\t--\t--\t------\n")

	for i, c := range coeffs {
		fmt.Fprintf(tw, "%d\t%.10f\t%.10f\t%.10f\t%.10f\t%.10f\t%t\n",
			i, c.B0, c.B1, c.B2, c.A1, c.A2, c.IsStable())
	}

	fmt.Fprintf(tw, "\nFreq [Hz]\t|H| [dB]\tPhase [deg]\tGroup delay [samples]\n")
	fmt.Fprintf(tw, "---------\t--------\t-----------\t---------------------\n")

	for _, f := range probeFrequencies(p.freq, p.rate) {
		h := resp.Response(f / p.rate)
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.3f\n",
			f,
			20*math.Log10(cmplx.Abs(h)),
			cmplx.Phase(h)*180/math.Pi,
			analysis.GroupDelay(resp, f, p.rate),
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	grid, err := analysis.Freqz(resp, gridPoints, p.rate)
	if err != nil {
		return err
	}

	db := grid.MagnitudeDB()
	peak := floats.MaxIdx(db)

	if _, err := fmt.Fprintf(w, "\npeak: %.2f dB at %.1f Hz\n", db[peak], grid.Frequencies[peak]); err != nil {
		return fmt.Errorf("failed to write peak: %w", err)
	}

	return nil
}
