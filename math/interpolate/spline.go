/*package interpolate provides routines for creating smooth analytic functions
through sampled data.
*/
package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D natural cubic spline over a strictly increasing
// sample grid. Evaluation outside the sampled range returns the boundary
// value rather than extrapolating: the curves splined in this project are
// normalized so that their boundary values are also their asymptotic limits.
type Spline struct {
	name   string
	xs, ys []float64
	y2s    []float64
	coeffs []splineCoeff

	// Usually the input data is uniform. This is our estimate of the point
	// spacing, used to seed the interval search.
	dx float64
}

// NewSpline creates a spline through the given (x, y) table. The x values
// must be strictly increasing. The name tags error messages so a failure
// deep inside a calculation can be traced back to the curve that caused it.
func NewSpline(name string, xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"spline '%s': len(xs) = %d, but len(ys) = %d",
			name, len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		return nil, fmt.Errorf(
			"spline '%s': table has length %d", name, len(xs),
		)
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			return nil, fmt.Errorf(
				"spline '%s': xs not strictly increasing at index %d "+
					"(%g -> %g)", name, i, xs[i], xs[i+1],
			)
		}
	}

	sp := &Spline{
		name:   name,
		xs:     xs,
		ys:     ys,
		y2s:    make([]float64, len(xs)),
		coeffs: make([]splineCoeff, len(xs)-1),
	}
	sp.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	sp.calcY2s()
	sp.calcCoeffs()

	return sp, nil
}

// Name returns the diagnostic name the spline was created with.
func (sp *Spline) Name() string { return sp.name }

// Eval computes the value of the spline at x. Points outside the sampled
// range clamp to the nearest boundary value.
func (sp *Spline) Eval(x float64) float64 {
	n := len(sp.xs)
	if x <= sp.xs[0] {
		return sp.ys[0]
	} else if x >= sp.xs[n-1] {
		return sp.ys[n-1]
	}

	i := sp.bsearch(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	return a*dx*dx*dx + b*dx*dx + c*dx + d
}

// Deriv computes the first derivative of the spline at x. Consistent with
// the flat clamping in Eval, the derivative outside the sampled range is 0.
func (sp *Spline) Deriv(x float64) float64 {
	n := len(sp.xs)
	if x <= sp.xs[0] || x >= sp.xs[n-1] {
		return 0
	}

	i := sp.bsearch(x)
	dx := x - sp.xs[i]
	a, b, c := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c
	return 3*a*dx*dx + 2*b*dx + c
}

// bsearch returns the index of the largest element in xs which is smaller
// than x. Assumes x is strictly inside the sampled range.
func (sp *Spline) bsearch(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < len(sp.xs)-1 &&
		sp.xs[guess] <= x && sp.xs[guess+1] >= x {

		return guess
	}

	// Binary search.
	lo, hi := 0, len(sp.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= sp.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// calcY2s computes the second derivative at every point in the table. The
// boundary second derivatives are set to zero (a natural spline).
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)
	sp.y2s[0], sp.y2s[n-1] = 0, 0

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range sp.coeffs {
		dx := xs[i+1] - xs[i]
		coeffs[i].a = (-y2s[i]/6 + y2s[i+1]/6) / dx
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/dx + dx*(-y2s[i]/3-y2s[i+1]/6)
		coeffs[i].d = ys[i]
	}
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// For out0 .. outn in place in the given slice.
func TriDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Length of arguments to TriDiagAt are unequal.")
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		panic("TriDiagAt cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			panic("TriDiagAt cannot solve given system")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}
