package background

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestWriteTable(t *testing.T) {
	m := newTestLCDM(t, nil)

	buf := &bytes.Buffer{}
	if err := WriteTable(buf, m, 0.01, 1.0, 10); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("table has %d lines, want 1 header + 10 rows", len(lines))
	}

	if !strings.HasPrefix(lines[0], "#") {
		t.Fatalf("header line doesn't start with '#': %q", lines[0])
	}
	header := strings.Fields(strings.TrimPrefix(lines[0], "#"))
	want := []string{
		"a", "H/H0", "dlogH/dloga", "OmegaM", "OmegaR", "OmegaNu",
		"OmegaMNu", "OmegaNu_exact", "OmegaLambda",
	}
	if len(header) != len(want) {
		t.Fatalf("header has %d columns, want %d: %q",
			len(header), len(want), lines[0])
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("header column %d is %q, want %q", i, header[i], want[i])
		}
	}

	rows := make([][]float64, len(lines)-1)
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != len(want) {
			t.Fatalf("row %d has %d columns, want %d", i, len(fields),
				len(want))
		}
		rows[i] = make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				t.Fatalf("row %d column %d is not a number: %q", i, j, field)
			}
			rows[i][j] = v
		}
	}

	// Rows are log-uniform in a from alow to ahigh.
	if a0 := rows[0][0]; math.Abs(a0-0.01) > 1e-9 {
		t.Errorf("first row a = %g, want 0.01", a0)
	}
	if aN := rows[len(rows)-1][0]; math.Abs(aN-1.0) > 1e-9 {
		t.Errorf("last row a = %g, want 1", aN)
	}

	// Spot-check the last row against the model.
	last := rows[len(rows)-1]
	if math.Abs(last[1]-m.HOverH0(1)) > 1e-7 {
		t.Errorf("last row H/H0 = %g, want %g", last[1], m.HOverH0(1))
	}
	if math.Abs(last[8]-m.OmegaLambda(1)) > 1e-7 {
		t.Errorf("last row OmegaLambda = %g, want %g",
			last[8], m.OmegaLambda(1))
	}
}

func TestWriteTableAppendsModelColumns(t *testing.T) {
	m := newTestW0Wa(t, map[string]string{
		"cosmology_w0": "-0.9", "cosmology_wa": "0.1",
	})

	buf := &bytes.Buffer{}
	if err := WriteTable(buf, m, 0.1, 1.0, 4); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	header := strings.Fields(strings.TrimPrefix(lines[0], "#"))
	if got := header[len(header)-1]; got != "w" {
		t.Fatalf("last header column is %q, want the appended \"w\"", got)
	}

	fields := strings.Fields(lines[len(lines)-1])
	w, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w-m.WOfA(1)) > 1e-7 {
		t.Errorf("appended column at a = 1 is %g, want w(1) = %g",
			w, m.WOfA(1))
	}
}

func TestWriteTableRejectsBadRanges(t *testing.T) {
	m := newTestLCDM(t, nil)
	buf := &bytes.Buffer{}

	if err := WriteTable(buf, m, 0.01, 1.0, 1); err == nil {
		t.Error("WriteTable accepted npts = 1")
	}
	if err := WriteTable(buf, m, -1, 1.0, 10); err == nil {
		t.Error("WriteTable accepted alow = -1")
	}
	if err := WriteTable(buf, m, 1.0, 0.5, 10); err == nil {
		t.Error("WriteTable accepted ahigh < alow")
	}
}
