package background

import (
	"math"
	"strings"
	"testing"

	"cosmobg/param"
)

func newTestW0Wa(t *testing.T, overrides map[string]string) *W0WaCDM {
	t.Helper()
	m := NewW0WaCDM()
	if err := m.ReadParameters(param.FromKeys(testKeys(overrides))); err != nil {
		t.Fatalf("ReadParameters failed: %v", err)
	}
	if err := m.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return m
}

func TestW0WaRequiresEquationOfState(t *testing.T) {
	m := NewW0WaCDM()
	err := m.ReadParameters(param.FromKeys(testKeys(nil)))
	if err == nil {
		t.Fatal("ReadParameters succeeded without cosmology_w0")
	}
	if !strings.Contains(err.Error(), "cosmology_w0") {
		t.Errorf("error doesn't name the missing key: %v", err)
	}

	err = m.ReadParameters(param.FromKeys(testKeys(map[string]string{
		"cosmology_w0": "-1",
	})))
	if err == nil || !strings.Contains(err.Error(), "cosmology_wa") {
		t.Errorf("missing cosmology_wa not reported: %v", err)
	}
}

func TestW0WaReducesToLCDM(t *testing.T) {
	overrides := map[string]string{"cosmology_w0": "-1", "cosmology_wa": "0"}
	w := newTestW0Wa(t, overrides)
	l := newTestLCDM(t, nil)

	for _, a := range []float64{1e-3, 0.01, 0.1, 0.5, 1, 5} {
		ew, el := w.HOverH0(a), l.HOverH0(a)
		if math.Abs(ew-el) > 1e-13*el {
			t.Errorf("E(%g): w0waCDM(-1, 0) = %.16g, LCDM = %.16g",
				a, ew, el)
		}
		dw, dl := w.DlogHDloga(a), l.DlogHDloga(a)
		if math.Abs(dw-dl) > 1e-12 {
			t.Errorf("dlogE/dloga(%g): w0waCDM(-1, 0) = %.16g, "+
				"LCDM = %.16g", a, dw, dl)
		}
	}
}

func TestW0WaDerivativeConsistency(t *testing.T) {
	m := newTestW0Wa(t, map[string]string{
		"cosmology_w0": "-0.9", "cosmology_wa": "0.2",
	})

	for _, a := range []float64{0.01, 0.1, 1.0, 5.0} {
		got := m.DlogHDloga(a)
		h := 1e-6
		want := (math.Log(m.HOverH0(a*math.Exp(h))) -
			math.Log(m.HOverH0(a*math.Exp(-h)))) / (2 * h)
		if math.Abs(got-want) > 1e-5 {
			t.Errorf("DlogHDloga(%g) = %.10g, numerical %.10g", a, got, want)
		}
	}
}

func TestW0WaOmegasSumToUnity(t *testing.T) {
	m := newTestW0Wa(t, map[string]string{
		"cosmology_w0": "-0.9", "cosmology_wa": "0.3",
		"cosmology_OmegaK": "0.01",
	})

	// E^2 is the sum of the species densities over the critical density
	// today, so the density parameters must add to 1 at every a. This only
	// holds if OmegaLambda tracks the CPL density, not the constant-Lambda
	// scaling.
	for _, a := range []float64{0.01, 0.1, 0.5, 1, 2} {
		sum := m.OmegaM(a) + m.OmegaRtot(a) + m.OmegaK(a) + m.OmegaLambda(a)
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("w0waCDM density parameters at a = %g sum to %.15g",
				a, sum)
		}
	}

	// The dark energy density redshifts, so away from a = 1 the accessor
	// must disagree with the constant-Lambda scaling.
	a := 0.5
	e := m.HOverH0(a)
	constLambda := m.Par().OmegaLambda / (e * e)
	if got := m.OmegaLambda(a); math.Abs(got-constLambda) < 1e-6 {
		t.Errorf("OmegaLambda(%g) = %g matches the constant-Lambda "+
			"scaling %g for wa != 0", a, got, constLambda)
	}
}

func TestW0WaEquationOfState(t *testing.T) {
	m := newTestW0Wa(t, map[string]string{
		"cosmology_w0": "-0.9", "cosmology_wa": "0.2",
	})

	if w := m.WOfA(1); w != -0.9 {
		t.Errorf("w(1) = %g, want w0 = -0.9", w)
	}
	if w := m.WOfA(0); math.Abs(w-(-0.7)) > 1e-15 {
		t.Errorf("w(0) = %g, want w0 + wa = -0.7", w)
	}

	// Closure holds for dynamical dark energy too.
	if sum := m.sumOmega(); math.Abs(sum-1) > 1e-12 {
		t.Errorf("density budget sums to %.15g after Init", sum)
	}
	if e := m.HOverH0(1); math.Abs(e-1) > 1e-13 {
		t.Errorf("H(1)/H0 = %.16g, want 1", e)
	}
}
