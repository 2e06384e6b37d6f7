package background

import (
	"fmt"
	"io"
	"math"
)

// RowExtender is implemented by models that append columns to the
// background table. The fixed columns always come first and keep their
// order.
type RowExtender interface {
	ExtraHeader() []string
	ExtraRow(a float64) []float64
}

const tableColWidth = 15

var tableHeader = []string{
	"a", "H/H0", "dlogH/dloga", "OmegaM", "OmegaR", "OmegaNu", "OmegaMNu",
	"OmegaNu_exact", "OmegaLambda",
}

// WriteTable writes a background table for m to w: a '#'-marked header row
// followed by npts rows sampled log-uniformly in a over [alow, ahigh]. The
// model must be initialized.
func WriteTable(w io.Writer, m Model, alow, ahigh float64, npts int) error {
	if npts < 2 {
		return fmt.Errorf("background table needs at least 2 points, got %d",
			npts)
	} else if alow <= 0 || ahigh <= alow {
		return fmt.Errorf("invalid background table range [%g, %g]",
			alow, ahigh)
	}

	ext, _ := m.(RowExtender)

	header := tableHeader
	if ext != nil {
		header = append(append([]string{}, header...), ext.ExtraHeader()...)
	}
	if _, err := fmt.Fprintf(w, "#"); err != nil {
		return err
	}
	for i, name := range header {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%*s", sep, tableColWidth, name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	for i := 0; i < npts; i++ {
		loga := math.Log(alow) +
			math.Log(ahigh/alow)*float64(i)/float64(npts-1)
		a := math.Exp(loga)

		vals := []float64{
			a, m.HOverH0(a), m.DlogHDloga(a), m.OmegaM(a), m.OmegaR(a),
			m.OmegaNu(a), m.OmegaMNu(a), m.OmegaNuExact(a), m.OmegaLambda(a),
		}
		if ext != nil {
			vals = append(vals, ext.ExtraRow(a)...)
		}

		// The leading ' ' compensates for the '#' in the header.
		if _, err := fmt.Fprintf(w, " "); err != nil {
			return err
		}
		for j, v := range vals {
			sep := " "
			if j == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s%*.8g", sep, tableColWidth, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
