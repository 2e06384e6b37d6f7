package background

import (
	"math"

	"github.com/sirupsen/logrus"

	"cosmobg/param"
)

// W0WaCDM is a dynamical dark energy model with the CPL equation of state
// w(a) = w0 + wa (1 - a). Setting w0 = -1, wa = 0 recovers LCDM.
type W0WaCDM struct {
	Background
	W0, Wa float64
}

var _ Model = (*W0WaCDM)(nil)
var _ RowExtender = (*W0WaCDM)(nil)

// NewW0WaCDM returns an uninitialized w0waCDM model.
func NewW0WaCDM() *W0WaCDM {
	m := &W0WaCDM{}
	m.Background = NewBackground("w0waCDM", m)
	return m
}

// ReadParameters reads the shared cosmology keys, then the equation of
// state parameters cosmology_w0 and cosmology_wa.
func (m *W0WaCDM) ReadParameters(p *param.Map) error {
	if err := m.Background.ReadParameters(p); err != nil {
		return err
	}
	var err error
	if m.W0, err = p.Float("cosmology_w0"); err != nil {
		return err
	}
	m.Wa, err = p.Float("cosmology_wa")
	return err
}

// WOfA returns the dark energy equation of state at scale factor a.
func (m *W0WaCDM) WOfA(a float64) float64 {
	return m.W0 + m.Wa*(1.0-a)
}

// rhoDE is the dark energy density over the critical density today,
// rho_DE(a)/rho_crit0 = OmegaLambda a^{-3(1+w0+wa)} e^{-3 wa (1-a)}.
func (m *W0WaCDM) rhoDE(a float64) float64 {
	return m.par.OmegaLambda * math.Pow(a, -3.0*(1.0+m.W0+m.Wa)) *
		math.Exp(-3.0*m.Wa*(1.0-a))
}

func (m *W0WaCDM) HOverH0(a float64) float64 {
	p := &m.par
	return math.Sqrt(m.rhoDE(a) + p.OmegaK/(a*a) +
		p.OmegaM/(a*a*a) + p.OmegaRtot/(a*a*a*a))
}

// OmegaLambda is the dark energy density parameter at scale factor a. The
// generic accessor assumes a cosmological constant, which doesn't redshift;
// CPL dark energy does, so the density here is rhoDE, not OmegaLambda/E^2.
func (m *W0WaCDM) OmegaLambda(a float64) float64 {
	if a == 1 {
		return m.par.OmegaLambda
	}
	e := m.HOverH0(a)
	return m.rhoDE(a) / (e * e)
}

func (m *W0WaCDM) DlogHDloga(a float64) float64 {
	p := &m.par
	e := m.HOverH0(a)
	// dlog(rhoDE)/dloga = -3 (1 + w(a)).
	dRhoDE := m.rhoDE(a) * (-3.0*(1.0+m.W0+m.Wa) + 3.0*m.Wa*a)
	return 1.0 / (2.0 * e * e) *
		(dRhoDE - 2.0*p.OmegaK/(a*a) - 3.0*p.OmegaM/(a*a*a) -
			4.0*p.OmegaRtot/(a*a*a*a))
}

// Info logs the shared parameter block plus the equation of state.
func (m *W0WaCDM) Info(log *logrus.Logger, task int) {
	m.Background.Info(log, task)
	if task != 0 {
		return
	}
	log.Infof("  w0          : %g", m.W0)
	log.Infof("  wa          : %g", m.Wa)
}

// ExtraHeader appends the equation of state column to the background table.
func (m *W0WaCDM) ExtraHeader() []string { return []string{"w"} }

// ExtraRow returns the appended column values at scale factor a.
func (m *W0WaCDM) ExtraRow(a float64) []float64 {
	return []float64{m.WOfA(a)}
}
