package background

import (
	"math"
)

// Physical constants, SI.
const (
	lightSpeed = 2.99792458e8      // m/s
	newtonG    = 6.6743e-11        // m^3 kg^-1 s^-2
	hBar       = 1.054571817e-34   // J s
	kBoltzmann = 1.380649e-23      // J/K
	electronV  = 1.602176634e-19   // J
	mpcMeters  = 3.08567758149137e22 // m
)

// h0OverH is H0 in 1/s per unit h (100 km/s/Mpc).
const h0OverH = 1e5 / mpcMeters

// h0HMpc is H0 in units of h/Mpc.
const h0HMpc = 1.0 / 2997.92458

// Riemann zeta values entering the relativistic Fermi-Dirac moments.
const (
	zeta3 = 1.20205690315959
	zeta4 = 1.08232323371113
	zeta5 = 1.03692775514336
)

// Normalization constants for the neutrino Boltzmann integrals. The energy
// density integral tends to sixEta4 as y -> 0 and to twoEta3*y as y -> inf,
// so dividing by (sixEta4 + twoEta3*y) pins the splined curve to 1 at both
// ends of its domain.
const (
	twoEta3  = 3.0 / 2.0 * zeta3
	sixEta4  = 7.0 / 120.0 * math.Pi * math.Pi * math.Pi * math.Pi
	sixZeta4 = 6.0 * zeta4
)

var (
	// Non-relativistic neutrino sound speed prefactor (arXiv:1408.2995).
	nuSoundSpeedFactor = math.Sqrt(25.0 * zeta5 / zeta3 / 3.0)
	// Sound speed over c of free radiation, the cap on the neutrino one.
	radiationSoundSpeed = 1.0 / math.Sqrt(3.0)
)
