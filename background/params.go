package background

// Params is the parameter set shared by every background cosmology. All of
// the density parameters are fractions of the critical density today. The
// set is filled in by ReadParameters, corrected once by Init, and read-only
// afterwards, with the exception of the primordial spectrum amplitude and
// tilt, which downstream calibration is allowed to adjust.
type Params struct {
	H float64 // Hubble parameter (little h)

	OmegaMNu    float64 // Massive neutrinos (in the matter era)
	OmegaB      float64 // Baryons
	OmegaCDM    float64 // Cold dark matter
	OmegaM      float64 // Total matter (in the matter era)
	OmegaLambda float64 // Dark energy
	OmegaR      float64 // Photons
	OmegaNu     float64 // Neutrinos (density set by NEff)
	OmegaRtot   float64 // Total relativistic (in the radiation era)
	OmegaK      float64 // Curvature

	NEff       float64 // Effective number of non-photon relativistic species
	TCMBKelvin float64 // Temperature of the CMB today in Kelvin
	TNuKelvin  float64 // Neutrino temperature today. Derived from NEff, TCMB
	MNuEV      float64 // Sum of neutrino masses in eV. Derived from OmegaMNu
	NNu        float64 // Number of neutrino species (3)

	// Primordial power spectrum.
	As        float64
	Ns        float64
	KPivotMpc float64
}
