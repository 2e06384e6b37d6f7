/*cosmobg computes the background expansion history of a cosmological model
with an exact relativistic treatment of massive neutrinos, and tabulates
H(a), dlogH/dloga, and the density parameters of every species.*/
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"cosmobg/background"
	"cosmobg/param"
	"cosmobg/version"
)

var modeDescriptions = `My modes are:
cosmobg lcdm ____.ini
cosmobg w0wacdm ____.ini
cosmobg help
cosmobg version

The parameter file must set cosmology_OmegaMNu, cosmology_Omegab,
cosmology_OmegaCDM, cosmology_h, cosmology_As, cosmology_ns,
cosmology_kpivot_mpc, cosmology_Neffective, and cosmology_TCMB_kelvin.
cosmology_OmegaK is optional and defaults to 0. The w0wacdm mode also needs
cosmology_w0 and cosmology_wa.

If output_file is set, a background table is written there over
[output_alow, output_ahigh] with output_npts log-spaced rows.`

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'cosmobg help'.\n",
		)
		os.Exit(1)
	}

	switch args[1] {
	case "help":
		fmt.Println(modeDescriptions)
		os.Exit(0)
	case "version":
		fmt.Printf("cosmobg version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	var m background.Model
	switch args[1] {
	case "lcdm":
		m = background.NewLCDM()
	case "w0wacdm":
		m = background.NewW0WaCDM()
	default:
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type 'cosmobg help'.\n", args[1],
		)
		os.Exit(1)
	}

	if len(args) != 3 {
		fmt.Fprintf(
			os.Stderr, "The %s mode takes a single parameter file.\n", args[1],
		)
		os.Exit(1)
	}

	p, err := param.Load(args[2])
	if err != nil {
		log.Fatal(err)
	}
	if err := m.ReadParameters(p); err != nil {
		log.Fatal(err)
	}
	if err := m.Init(); err != nil {
		log.Fatal(err)
	}

	// Single-process run, so this process is the printing task.
	m.Info(log.StandardLogger(), 0)

	if !p.Has("output_file") {
		return
	}
	outFile := p.StringDefault("output_file", "")
	alow, err := p.FloatDefault("output_alow", 1e-4)
	if err != nil {
		log.Fatal(err)
	}
	ahigh, err := p.FloatDefault("output_ahigh", 10.0)
	if err != nil {
		log.Fatal(err)
	}
	npts, err := p.IntDefault("output_npts", 1000)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(outFile)
	if err != nil {
		log.Fatalf("Could not open %s for output: %v", outFile, err)
	}
	defer f.Close()
	if err := background.WriteTable(f, m, alow, ahigh, npts); err != nil {
		log.Fatal(err)
	}
	log.Infof("Wrote background table to %s", outFile)
}
