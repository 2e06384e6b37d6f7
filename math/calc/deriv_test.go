package calc

import (
	"math"
	"testing"
)

func TestDerivQuadratic(t *testing.T) {
	n := 21
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * 0.1
		ys[i] = xs[i] * xs[i]
	}

	for _, order := range []int{2, 4} {
		out := Deriv(xs, ys, order)
		for i := range out {
			want := 2 * xs[i]
			if math.Abs(out[i]-want) > 1e-10 {
				t.Errorf("order %d: Deriv[%d] = %g, want %g",
					order, i, out[i], want)
			}
		}
	}
}

func TestLogDerivPowerLaw(t *testing.T) {
	f := func(x float64) float64 { return 5 * math.Pow(x, 3) }
	for _, x := range []float64{0.01, 1, 100} {
		got := LogDeriv(f, x, 1e-5)
		if math.Abs(got-3) > 1e-9 {
			t.Errorf("LogDeriv(x^3, %g) = %g, want 3", x, got)
		}
	}
}
