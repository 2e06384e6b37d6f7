package background

import (
	"math"
)

// LCDM is a flat-or-curved cosmological constant model. It supplies the
// closed-form E(a) and dlogE/dloga pair; everything else comes from the
// embedded Background.
type LCDM struct {
	Background
}

var _ Model = (*LCDM)(nil)

// NewLCDM returns an uninitialized LCDM model. Call ReadParameters and
// Init before querying it.
func NewLCDM() *LCDM {
	m := &LCDM{}
	m.Background = NewBackground("LCDM", m)
	return m
}

func (m *LCDM) HOverH0(a float64) float64 {
	p := &m.par
	return math.Sqrt(p.OmegaLambda + p.OmegaK/(a*a) +
		p.OmegaM/(a*a*a) + p.OmegaRtot/(a*a*a*a))
}

func (m *LCDM) DlogHDloga(a float64) float64 {
	p := &m.par
	e := m.HOverH0(a)
	return 1.0 / (2.0 * e * e) *
		(-2.0*p.OmegaK/(a*a) - 3.0*p.OmegaM/(a*a*a) -
			4.0*p.OmegaRtot/(a*a*a*a))
}
