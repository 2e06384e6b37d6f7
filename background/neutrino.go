package background

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"cosmobg/math/interpolate"
)

// The neutrino Boltzmann integrals run over the dimensionless momentum
// x = p c / (k_B T) up to boltzmannXMax: the Fermi-Dirac tail beyond x = 20
// is numerically negligible. They are sampled at boltzmannNPts values of the
// mass parameter y = M_nu / (T_nu(a) N_nu), with the first point pinned at
// y = 0 and the rest log-spaced over [boltzmannYMin, boltzmannYMax].
const (
	boltzmannXMax  = 20.0
	boltzmannNPts  = 200
	boltzmannYMin  = 0.01
	boltzmannYMax  = 1000.0
	boltzmannNodes = 200 // Gauss-Legendre nodes per integral
)

// solveNeutrinos builds the two Boltzmann integral splines. The raw
// integrals are normalized so that the splined curves tend to 1 at both
// y -> 0 and y -> inf, which is what makes the boundary-clamped spline
// evaluation safe for any y.
func (bg *Background) solveNeutrinos() error {
	ys := make([]float64, boltzmannNPts)
	floats.LogSpan(ys[1:], boltzmannYMin, boltzmannYMax)

	eVals := make([]float64, boltzmannNPts)
	pVals := make([]float64, boltzmannNPts)
	for i, y := range ys {
		eRaw := quad.Fixed(energyIntegrand(y),
			0, boltzmannXMax, boltzmannNodes, nil, 0)
		pRaw := quad.Fixed(pressureIntegrand(y),
			0, boltzmannXMax, boltzmannNodes, nil, 0)
		if !isFinite(eRaw) || !isFinite(pRaw) {
			return fmt.Errorf(
				"neutrino Boltzmann integral did not converge at y = %g", y,
			)
		}
		eVals[i] = eRaw / (sixEta4 + twoEta3*y)
		pVals[i] = pRaw / (sixEta4 / 3.0)
	}

	var err error
	bg.energySpline, err = interpolate.NewSpline(
		"neutrino Boltzmann integral - energy density", ys, eVals,
	)
	if err != nil {
		return err
	}
	bg.pressureSpline, err = interpolate.NewSpline(
		"neutrino Boltzmann integral - pressure", ys, pVals,
	)
	return err
}

// energyIntegrand is the integrand of the relativistic energy density
// integral F(y) for a thermal fermion with mass parameter y.
func energyIntegrand(y float64) func(x float64) float64 {
	return func(x float64) float64 {
		return x * x * math.Sqrt(x*x+y*y) / (1.0 + math.Exp(x))
	}
}

// pressureIntegrand is the integrand of the pressure integral G(y). The
// integrand is 0/0 at x = 0, y = 0; its limit there is 0.
func pressureIntegrand(y float64) func(x float64) float64 {
	return func(x float64) float64 {
		if x == 0 && y == 0 {
			return 0
		}
		return x * x * (x * x / math.Sqrt(x*x+y*y) / 3.0) /
			(1.0 + math.Exp(x))
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// boltzmannEnergy returns the unnormalized energy density integral F(y).
func (bg *Background) boltzmannEnergy(y float64) float64 {
	return bg.energySpline.Eval(y) * (sixEta4 + twoEta3*y)
}

// boltzmannPressure returns the unnormalized pressure integral G(y).
func (bg *Background) boltzmannPressure(y float64) float64 {
	return bg.pressureSpline.Eval(y) * (sixEta4 / 3.0)
}

// dBoltzmannEnergyDlogy returns y dF(y)/dy. The y = 0 case is guarded
// explicitly: the defining integrand is ill-defined there and the limit
// is 0.
func (bg *Background) dBoltzmannEnergyDlogy(y float64) float64 {
	if y == 0 {
		return 0
	}
	return y * (bg.energySpline.Deriv(y)*(sixEta4+twoEta3*y) +
		twoEta3*bg.energySpline.Eval(y))
}

// nuMassParameter returns y(a) = M_nu / (T_nu(a) N_nu). The temperature
// redshifts as 1/a, so y shrinks with a: neutrinos are relativistic early.
func (bg *Background) nuMassParameter(a float64) float64 {
	return bg.par.MNuEV / bg.NuTemperatureEV(a) / bg.par.NNu
}

// NuTemperatureEV returns the neutrino temperature at scale factor a in eV.
func (bg *Background) NuTemperatureEV(a float64) float64 {
	return bg.par.TNuKelvin * kBoltzmann / electronV / a
}

// RhoNuExact returns the exact neutrino energy density over the critical
// density today, tracking the relativistic to non-relativistic transition.
func (bg *Background) RhoNuExact(a float64) float64 {
	y := bg.nuMassParameter(a)
	return bg.par.OmegaNu / (a * a * a * a) *
		bg.boltzmannEnergy(y) / bg.boltzmannNorm
}

// PNuExact returns the exact neutrino pressure over the critical density
// today.
func (bg *Background) PNuExact(a float64) float64 {
	y := bg.nuMassParameter(a)
	return bg.par.OmegaNu / (a * a * a * a) *
		bg.boltzmannPressure(y) / bg.boltzmannNorm
}

// DRhoNuDlogaExact returns dRhoNuExact/dloga. The a^-4 prefactor
// contributes -4 rho and the spline term follows from dy/dloga = y.
func (bg *Background) DRhoNuDlogaExact(a float64) float64 {
	y := bg.nuMassParameter(a)
	return bg.par.OmegaNu / (a * a * a * a) *
		(-4.0*bg.boltzmannEnergy(y) + bg.dBoltzmannEnergyDlogy(y)) /
		bg.boltzmannNorm
}

// NuSoundSpeedOverC returns the neutrino sound speed over c in the
// non-relativistic limit (arXiv:1408.2995), capped at the sound speed of
// free radiation at early times.
func (bg *Background) NuSoundSpeedOverC(a float64) float64 {
	return math.Min(
		nuSoundSpeedFactor*bg.NuTemperatureEV(a)/bg.par.MNuEV,
		radiationSoundSpeed,
	)
}

// NuFreeStreamingScaleHMpc returns the neutrino free-streaming wavenumber
// in h/Mpc (arXiv:1408.2995).
func (bg *Background) NuFreeStreamingScaleHMpc(a float64) float64 {
	return math.Sqrt(1.5*bg.par.OmegaM/a) / bg.NuSoundSpeedOverC(a) * h0HMpc
}
