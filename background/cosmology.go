/*package background computes the expansion history of a cosmological
background with an exact relativistic treatment of massive neutrinos.

A concrete model (LCDM, w0waCDM, ...) supplies the normalized Hubble rate
E(a) = H(a)/H0 and its logarithmic derivative. Everything else -- the
density-parameter evolution of every species, the exact neutrino energy
density and pressure, the primordial power spectrum -- is derived generically
from that pair by the embedded Background.

The lifecycle of a model is ReadParameters, then Init, then read-only
queries. Init builds the neutrino Boltzmann splines and replaces the
provisional cosmological constant density with the value that closes the
density budget at a = 1. Querying a model before Init returns stale values.
*/
package background

import (
	"math"

	"github.com/sirupsen/logrus"

	"cosmobg/math/interpolate"
	"cosmobg/param"
)

// ExpansionHistory is the pair of functions every concrete model must
// supply. DlogHDloga must be the exact logarithmic derivative of HOverH0
// for all a > 0; nothing checks this at runtime.
type ExpansionHistory interface {
	// HOverH0 returns E(a) = H(a)/H0.
	HOverH0(a float64) float64
	// DlogHDloga returns dlog(H)/dlog(a).
	DlogHDloga(a float64) float64
}

// Model is the full contract of a background cosmology.
type Model interface {
	ExpansionHistory

	Name() string
	ReadParameters(p *param.Map) error
	Init() error
	Info(log *logrus.Logger, task int)

	OmegaB(a float64) float64
	OmegaCDM(a float64) float64
	OmegaM(a float64) float64
	OmegaMNu(a float64) float64
	OmegaR(a float64) float64
	OmegaNu(a float64) float64
	OmegaNuExact(a float64) float64
	OmegaRtot(a float64) float64
	OmegaK(a float64) float64
	OmegaLambda(a float64) float64
}

// Background implements everything in Model except the ExpansionHistory
// pair. Concrete models embed it and register themselves as its expansion
// history, which stands in for the virtual dispatch the generic accessors
// need.
type Background struct {
	name      string
	par       Params
	expansion ExpansionHistory

	// Built once by Init.
	energySpline   *interpolate.Spline
	pressureSpline *interpolate.Spline
	// boltzmannNorm is F(0), the y = 0 value of the unnormalized energy
	// density integral. Populated by Init, after the splines exist.
	boltzmannNorm float64
}

// NewBackground returns a Background for a concrete model. The expansion
// argument is the embedding model itself.
func NewBackground(name string, expansion ExpansionHistory) Background {
	return Background{
		name:      name,
		expansion: expansion,
		par:       Params{NNu: 3},
	}
}

// Name returns the name of the model.
func (bg *Background) Name() string { return bg.name }

// Par returns a copy of the model's parameter set.
func (bg *Background) Par() Params { return bg.par }

// SetAs sets the primordial spectrum amplitude.
func (bg *Background) SetAs(as float64) { bg.par.As = as }

// SetNs sets the primordial spectrum tilt.
func (bg *Background) SetNs(ns float64) { bg.par.Ns = ns }

// SetKPivotMpc sets the primordial spectrum pivot scale in 1/Mpc.
func (bg *Background) SetKPivotMpc(k float64) { bg.par.KPivotMpc = k }

// ReadParameters reads the cosmology keys from p and derives the dependent
// parameters: the neutrino temperature, the photon and neutrino density
// parameters, the summed neutrino mass, and a provisional OmegaLambda.
// Models overriding this must call it before reading their own keys.
func (bg *Background) ReadParameters(p *param.Map) error {
	var err error
	read := func(dst *float64, key string) {
		if err != nil {
			return
		}
		*dst, err = p.Float(key)
	}

	read(&bg.par.OmegaMNu, "cosmology_OmegaMNu")
	read(&bg.par.OmegaB, "cosmology_Omegab")
	read(&bg.par.OmegaCDM, "cosmology_OmegaCDM")
	read(&bg.par.H, "cosmology_h")
	read(&bg.par.As, "cosmology_As")
	read(&bg.par.Ns, "cosmology_ns")
	read(&bg.par.KPivotMpc, "cosmology_kpivot_mpc")
	read(&bg.par.NEff, "cosmology_Neffective")
	read(&bg.par.TCMBKelvin, "cosmology_TCMB_kelvin")
	if err != nil {
		return err
	}
	if bg.par.OmegaK, err = p.FloatDefault("cosmology_OmegaK", 0.0); err != nil {
		return err
	}

	bg.par.OmegaM = bg.par.OmegaB + bg.par.OmegaCDM + bg.par.OmegaMNu

	// Neutrino to photon temperature today.
	bg.par.TNuKelvin = bg.par.TCMBKelvin *
		math.Pow(bg.par.NEff/3.0, 0.25) * math.Pow(4.0/11.0, 1.0/3.0)

	// Photon density parameter from T_CMB.
	const nPhoton = 2
	rhoCritTodayOverH2 := 3.0 * h0OverH * h0OverH / (8.0 * math.Pi * newtonG)
	omegaRh2 := nPhoton * sixZeta4 / (2.0 * math.Pi * math.Pi) *
		math.Pow(kBoltzmann*bg.par.TCMBKelvin/hBar, 4) * hBar /
		math.Pow(lightSpeed, 5) / rhoCritTodayOverH2
	bg.par.OmegaR = omegaRh2 / (bg.par.H * bg.par.H)

	// Neutrino density parameter from NEff.
	omegaNuh2 := (7.0 / 8.0) * bg.par.NNu *
		math.Pow(bg.par.TNuKelvin/bg.par.TCMBKelvin, 4) * omegaRh2
	bg.par.OmegaNu = omegaNuh2 / (bg.par.H * bg.par.H)

	// The sum of the neutrino masses follows from OmegaMNu.
	bg.par.MNuEV = (bg.par.OmegaMNu / bg.par.OmegaNu) / twoEta3 * sixEta4 *
		bg.par.NNu * (bg.par.TNuKelvin * kBoltzmann / electronV)

	// Total radiation density in the early Universe.
	bg.par.OmegaRtot = bg.par.OmegaR + bg.par.OmegaNu

	// The cosmological constant is what's left. This overcounts the
	// neutrinos, which are matter today; Init corrects it.
	bg.par.OmegaLambda = 1.0 - bg.par.OmegaM - bg.par.OmegaRtot - bg.par.OmegaK

	return nil
}

// Init solves the neutrino Boltzmann integrals, then replaces the
// provisional cosmological constant density with the value that closes the
// density budget at a = 1 under the exact neutrino treatment. It must be
// called exactly once, after ReadParameters and before any query.
func (bg *Background) Init() error {
	if err := bg.solveNeutrinos(); err != nil {
		return err
	}
	bg.boltzmannNorm = bg.boltzmannEnergy(0)

	bg.par.OmegaLambda = 1.0 - (bg.par.OmegaK + bg.par.OmegaR +
		bg.par.OmegaCDM + bg.par.OmegaB + bg.RhoNuExact(1.0))
	return nil
}

// FMNu returns the massive neutrino fraction of the total matter density.
func (bg *Background) FMNu() float64 {
	return bg.par.OmegaMNu / bg.par.OmegaM
}

// The Omega accessors return the density parameter of a species at scale
// factor a. At a = 1 they return the stored parameter directly; elsewhere
// the density today is redshifted by the species-specific power of a and
// divided by E(a)^2.

func (bg *Background) OmegaB(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaB
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaB / (a * a * a * e * e)
}

func (bg *Background) OmegaCDM(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaCDM
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaCDM / (a * a * a * e * e)
}

func (bg *Background) OmegaM(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaM
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaM / (a * a * a * e * e)
}

func (bg *Background) OmegaMNu(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaMNu
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaMNu / (a * a * a * e * e)
}

func (bg *Background) OmegaR(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaR
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaR / (a * a * a * a * e * e)
}

// OmegaNu is the matter/radiation-era approximation of the neutrino density
// parameter. OmegaNuExact tracks the relativistic to non-relativistic
// transition instead.
func (bg *Background) OmegaNu(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaNu
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaNu / (a * a * a * a * e * e)
}

func (bg *Background) OmegaNuExact(a float64) float64 {
	if a == 1 {
		return bg.RhoNuExact(1)
	}
	e := bg.expansion.HOverH0(a)
	return bg.RhoNuExact(a) / (e * e)
}

func (bg *Background) OmegaRtot(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaRtot
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaRtot / (a * a * a * a * e * e)
}

func (bg *Background) OmegaK(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaK
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaK / (a * a * e * e)
}

func (bg *Background) OmegaLambda(a float64) float64 {
	if a == 1 {
		return bg.par.OmegaLambda
	}
	e := bg.expansion.HOverH0(a)
	return bg.par.OmegaLambda / (e * e)
}

// PrimordialPofK returns the primordial power spectrum at k in h/Mpc,
// independent of the expansion history.
func (bg *Background) PrimordialPofK(kHMpc float64) float64 {
	return 2.0 * math.Pi * math.Pi / (kHMpc * kHMpc * kHMpc) * bg.par.As *
		math.Pow(bg.par.H*kHMpc/bg.par.KPivotMpc, bg.par.Ns-1.0)
}

// Info logs the parameter block of the model. Under multi-process runs only
// the designated task should print, so the caller passes its task number
// and everyone but task 0 stays quiet.
func (bg *Background) Info(log *logrus.Logger, task int) {
	if task != 0 {
		return
	}
	log.Infof("Cosmology [%s]", bg.name)
	log.Infof("  Omegab      : %g", bg.par.OmegaB)
	log.Infof("  OmegaM      : %g", bg.par.OmegaM)
	log.Infof("  OmegaMNu    : %g", bg.par.OmegaMNu)
	log.Infof("  OmegaCDM    : %g", bg.par.OmegaCDM)
	log.Infof("  OmegaLambda : %g", bg.par.OmegaLambda)
	log.Infof("  OmegaR      : %g", bg.par.OmegaR)
	log.Infof("  OmegaNu     : %g", bg.par.OmegaNu)
	log.Infof("  OmegaRtot   : %g", bg.par.OmegaRtot)
	log.Infof("  OmegaK      : %g", bg.par.OmegaK)
	log.Infof("  h           : %g", bg.par.H)
	log.Infof("  N_nu        : %g", bg.par.NNu)
	log.Infof("  Neff        : %g", bg.par.NEff)
	log.Infof("  Mnu         : %g eV", bg.par.MNuEV)
	log.Infof("  TCMB        : %g K", bg.par.TCMBKelvin)
	log.Infof("  Tnu         : %g K", bg.par.TNuKelvin)
	log.Infof("  As          : %g", bg.par.As)
	log.Infof("  ns          : %g", bg.par.Ns)
	log.Infof("  kpivot      : %g 1/Mpc", bg.par.KPivotMpc)
}

// sumOmega is the density budget at a = 1 with the neutrinos counted by
// their exact density today. Init drives it to 1 by construction.
func (bg *Background) sumOmega() float64 {
	return bg.par.OmegaB + bg.par.OmegaCDM + bg.par.OmegaR + bg.par.OmegaK +
		bg.par.OmegaLambda + bg.RhoNuExact(1)
}
