/*package calc provides some basic calculus routines.
*/
package calc

import (
	"math"
)

// Deriv computes the numerical derivative of a sequence of (x, y) points.
// The points do not need to be uniformly spaced.
//
// The only supported orders are 2 and 4.
func Deriv(xs, ys []float64, order int) []float64 {
	n := len(xs)
	if len(ys) != n {
		panic("Length of ys and xs are not the same.")
	}
	out := make([]float64, n)

	switch order {
	case 2:
		for i := 1; i < n-1; i++ {
			out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
		}
		out[0] = (-3*ys[0] + 4*ys[1] - ys[2]) / (xs[2] - xs[0])
		out[n-1] = -(-3*ys[n-1] + 4*ys[n-2] - ys[n-3]) / (xs[n-1] - xs[n-3])
	case 4:
		for i := 2; i < n-2; i++ {
			out[i] = (-ys[i+2] + 8*ys[i+1] - 8*ys[i-1] + ys[i-2]) /
				(3 * (xs[i+2] - xs[i-1]))
		}

		out[0] = (-3*ys[4] + 16*ys[3] - 36*ys[2] + 48*ys[1] -
			25*ys[0]) / (3 * (xs[4] - xs[0]))
		out[1] = (-3*ys[0] - 10*ys[1] + 18*ys[2] - 6*ys[3] +
			ys[4]) / (3 * (xs[4] - xs[0]))
		out[n-2] = (-3*ys[n-1] - 10*ys[n-2] + 18*ys[n-3] - 6*ys[n-4] +
			ys[n-5]) / (3 * (xs[n-5] - xs[n-1]))
		out[n-1] = (-3*ys[n-5] + 16*ys[n-4] - 36*ys[n-3] + 48*ys[n-2] -
			25*ys[n-1]) / (3 * (xs[n-5] - xs[n-1]))
	default:
		panic("Invalid order.")
	}
	return out
}

// LogDeriv computes d(log f)/d(log x) of a positive function at x by central
// differencing in log-log space with half-width eps. It is mainly useful for
// checking analytic logarithmic derivatives against their defining function.
func LogDeriv(f func(float64) float64, x, eps float64) float64 {
	logx := math.Log(x)
	yHi := f(math.Exp(logx + eps))
	yLo := f(math.Exp(logx - eps))
	return (math.Log(yHi) - math.Log(yLo)) / (2 * eps)
}
