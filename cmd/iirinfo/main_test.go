package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func defaultParams(typ string) params {
	return params{
		typ:    typ,
		order:  3,
		rate:   48000,
		freq:   2000,
		width:  800,
		gain:   6,
		ripple: 1,
		atten:  40,
		q:      1 / math.Sqrt2,
	}
}

func TestEveryRegisteredTypeBuilds(t *testing.T) {
	for _, fam := range registry {
		for _, typ := range fam.types {
			p := defaultParams(typ)
			if fam.name == "chebyshev2" && strings.HasSuffix(typ, "shelf") {
				// Shelf ripple must stay below |gain|.
				p.atten = 1
			}

			coeffs, err := fam.build(p)
			if err != nil {
				t.Fatalf("%s/%s: %v", fam.name, typ, err)
			}

			if len(coeffs) == 0 {
				t.Fatalf("%s/%s: no stages", fam.name, typ)
			}

			for i, c := range coeffs {
				if !c.IsFinite() || !c.IsStable() {
					t.Fatalf("%s/%s stage %d: %+v", fam.name, typ, i, c)
				}
			}
		}
	}
}

func TestLookupFamily(t *testing.T) {
	f, err := lookupFamily(" Chebyshev2 ")
	if err != nil {
		t.Fatal(err)
	}

	if f.name != "chebyshev2" || !f.supports("bandshelf") || f.supports("peak") {
		t.Fatalf("unexpected family %+v", f.name)
	}

	if _, err := lookupFamily("bessel"); err == nil {
		t.Fatal("expected error for unknown family")
	}

	z, _ := lookupFamily("zoelzer")
	if z.supports("allpass") || !z.supports("notch") {
		t.Fatalf("zoelzer types = %v", z.types)
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	bw, _ := lookupFamily("butterworth")

	p := defaultParams("lowpass")
	p.freq = 30000

	if _, err := bw.build(p); err == nil {
		t.Fatal("expected error above Nyquist")
	}

	p = defaultParams("lowpass")
	p.order = 0

	if _, err := bw.build(p); err == nil {
		t.Fatal("expected error for order 0")
	}

	rbj, _ := lookupFamily("rbj")
	if _, err := rbj.build(defaultParams("bandstop")); err == nil {
		t.Fatal("expected unsupported type error")
	}
}

func TestAnalogFamilyMatchesRBJ(t *testing.T) {
	direct, _ := lookupFamily("rbj")
	analog, _ := lookupFamily("rbj-analog")

	for _, typ := range direct.types {
		p := defaultParams(typ)

		want, err := direct.build(p)
		if err != nil {
			t.Fatal(err)
		}

		got, err := analog.build(p)
		if err != nil {
			t.Fatal(err)
		}

		w, g := want[0], got[0]
		for i, d := range []float64{g.B0 - w.B0, g.B1 - w.B1, g.B2 - w.B2, g.A1 - w.A1, g.A2 - w.A2} {
			if math.Abs(d) > 1e-12 {
				t.Fatalf("%s coef %d differs by %g", typ, i, d)
			}
		}
	}
}

func TestProbeFrequencies(t *testing.T) {
	got := probeFrequencies(1000, 48000)
	want := []float64{0, 500, 1000, 2000, 24000}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// 2*freq beyond Nyquist is dropped.
	if got := probeFrequencies(15000, 48000); len(got) != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestPrintDesign(t *testing.T) {
	fam, _ := lookupFamily("butterworth")
	p := defaultParams("lowpass")
	p.freq = 1000

	coeffs, err := fam.build(p)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printDesign(&buf, fam.name, p, coeffs); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, s := range []string{
		"butterworth lowpass, 2 sections, order 3, 48000 Hz",
		"Stage", "Group delay", "1000.0", "-3.01", "peak:",
	} {
		if !strings.Contains(out, s) {
			t.Fatalf("output missing %q:\n%s", s, out)
		}
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(registry) {
		t.Fatalf("got %d lines, want %d", len(lines), len(registry))
	}

	if !strings.HasPrefix(lines[0], "butterworth:") {
		t.Fatalf("first line = %q", lines[0])
	}
}
