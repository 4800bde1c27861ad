package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/erikyo/DDPEC/curve"
	"github.com/erikyo/DDPEC/dsp/filter/biquad"
	"github.com/erikyo/DDPEC/dsp/filter/design"
	"github.com/erikyo/DDPEC/eq"
	"github.com/erikyo/DDPEC/measure/ir"
	"github.com/erikyo/DDPEC/preset"
	"github.com/erikyo/DDPEC/profile"
	"github.com/fatih/color"
)

// loadState reads the profile file, falling back to the default state when
// no file exists yet.
func loadState() eq.State {
	data, err := os.ReadFile(profilePath())
	if errors.Is(err, os.ErrNotExist) {
		return eq.DefaultState()
	}
	if err != nil {
		fatalf("read profile: %v", err)
	}

	p, err := profile.ImportJSON(data)
	if err != nil {
		fatalf("decode profile %s: %v", profilePath(), err)
	}
	return eq.State{Bands: p.Bands, GlobalGain: p.GlobalGain}
}

func saveState(st eq.State) {
	out, err := profile.ExportJSON(st, profile.WithDevice(deviceTag()))
	if err != nil {
		fatalf("encode profile: %v", err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(profilePath(), out, 0o644); err != nil {
		fatalf("write profile: %v", err)
	}
}

func bandLine(b eq.Band) string {
	onOff := "on"
	if !b.Enabled {
		onOff = "off"
	}
	return fmt.Sprintf("band %d: %s %s Fc %g Hz Gain %+.1f dB Q %.2f",
		b.Index+1, onOff, b.Type, b.Freq, b.Gain, b.Q)
}

func cmdShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	fs.Parse(args)

	st := loadState()

	color.New(color.FgCyan, color.Bold).Printf("preamp: %+.1f dB\n", st.GlobalGain)
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Band\tState\tType\tFc [Hz]\tGain [dB]\tQ")
	fmt.Fprintln(tw, "----\t-----\t----\t-------\t---------\t-")
	for _, b := range st.Bands {
		onOff := "on"
		if !b.Enabled {
			onOff = "off"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%+.1f\t%.2f\n",
			b.Index+1, onOff, b.Type, b.Freq, b.Gain, b.Q)
	}
	tw.Flush()
}

func cmdSet(args []string) {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	band := fs.Int("band", 0, "band number (1-based)")
	fs.Parse(args)

	if *band < 1 || *band > eq.NumBands {
		fatalf("band %d out of range 1..%d", *band, eq.NumBands)
	}
	if fs.NArg() == 0 {
		fatalf("no fields given; expected <field>=<value> pairs (fc, gain, q, type, enabled)")
	}

	var updates []eq.BandUpdate
	for _, arg := range fs.Args() {
		field, value, ok := strings.Cut(arg, "=")
		if !ok {
			fatalf("malformed field %q; expected <field>=<value>", arg)
		}
		u, err := eq.ParseUpdate(field, value)
		if err != nil {
			fatalf("%v", err)
		}
		updates = append(updates, u)
	}

	store := eq.NewStore()
	store.Replace(loadState())
	store.UpdateBand(*band-1, updates...)

	st := store.Snapshot()
	saveState(st)
	fmt.Println(bandLine(st.Bands[*band-1]))
}

func cmdPreamp(args []string) {
	fs := flag.NewFlagSet("preamp", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fatalf("usage: ddpec preamp <dB>  (negative values need --, e.g. ddpec preamp -- -8)")
	}

	db, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		fatalf("parse gain %q: %v", fs.Arg(0), err)
	}

	store := eq.NewStore()
	store.Replace(loadState())
	store.SetGlobalGain(db)
	saveState(store.Snapshot())
	fmt.Printf("preamp: %+.1f dB\n", db)
}

func cmdReset(args []string) {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	fs.Parse(args)

	saveState(eq.DefaultState())
	fmt.Println("state reset to defaults")
}

func cmdCurve(args []string) {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	points := fs.Int("points", 32, "number of sample points")
	minHz := fs.Float64("min", curve.DefaultMinFreq, "lower frequency bound in Hz")
	maxHz := fs.Float64("max", curve.DefaultMaxFreq, "upper frequency bound in Hz")
	sr := fs.Float64("sr", design.DefaultSampleRate, "sample rate in Hz")
	fs.Parse(args)

	if *points < 2 {
		fatalf("need at least 2 points")
	}

	st := loadState()
	pts := curve.SampleState(st, *points,
		curve.WithRange(*minHz, *maxHz),
		curve.WithSampleRate(*sr),
	)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Freq [Hz]\tGain [dB]")
	fmt.Fprintln(tw, "---------\t---------")
	for _, p := range pts {
		fmt.Fprintf(tw, "%.1f\t%+.2f\n", p.FreqHz, p.DB)
	}
	tw.Flush()

	sum := curve.Summarize(pts)
	fmt.Printf("\nmin %+.2f dB at %.0f Hz, max %+.2f dB at %.0f Hz, mean %+.2f dB\n",
		sum.MinDB, sum.MinFreqHz, sum.MaxDB, sum.MaxFreqHz, sum.MeanDB)
}

func cmdSpectrum(args []string) {
	fs := flag.NewFlagSet("spectrum", flag.ExitOnError)
	fftSize := fs.Int("fft", ir.DefaultFFTSize, "FFT size (power of two)")
	sr := fs.Float64("sr", design.DefaultSampleRate, "sample rate in Hz")
	fs.Parse(args)

	st := loadState()
	res, err := ir.StateSpectrum(st, ir.WithFFTSize(*fftSize), ir.WithSampleRate(*sr))
	if err != nil {
		fatalf("%v", err)
	}

	coeffs := design.ForBands(st.Bands, *sr)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Freq [Hz]\tAnalytic [dB]\tMeasured [dB]")
	fmt.Fprintln(tw, "---------\t-------------\t-------------")
	for _, b := range st.Bands {
		if b.Freq <= 0 || b.Freq >= *sr/2 {
			continue
		}
		analytic := biquad.CascadeMagnitudeDB(coeffs, b.Freq, *sr) + st.GlobalGain
		fmt.Fprintf(tw, "%g\t%+.2f\t%+.2f\n", b.Freq, analytic, res.AtFreq(b.Freq))
	}
	tw.Flush()
}

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fatalf("usage: ddpec import <file>")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("read %s: %v", fs.Arg(0), err)
	}

	p, err := profile.Import(data)
	if err != nil {
		fatalf("import %s: %v", fs.Arg(0), err)
	}

	store := eq.NewStore()
	profile.Apply(store, p)
	saveState(store.Snapshot())
	fmt.Printf("imported %s\n", fs.Arg(0))
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "json", "output format (json or text)")
	out := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)

	st := loadState()

	var data []byte
	switch strings.ToLower(*format) {
	case "json":
		var err error
		data, err = profile.ExportJSON(st, profile.WithDevice(deviceTag()))
		if err != nil {
			fatalf("export: %v", err)
		}
		data = append(data, '\n')
	case "text":
		data = []byte(profile.ExportText(st))
	default:
		fatalf("unknown format %q (want json or text)", *format)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("wrote %s\n", *out)
}

func cmdPreset(args []string) {
	if len(args) < 1 {
		fatalf("usage: ddpec preset save|load|list|delete [name]")
	}

	lib, err := preset.Open(presetDBPath())
	if err != nil {
		fatalf("%v", err)
	}
	defer lib.Close()

	switch args[0] {
	case "save":
		if len(args) != 2 {
			fatalf("usage: ddpec preset save <name>")
		}
		body, err := profile.ExportJSON(loadState(), profile.WithDevice(deviceTag()))
		if err != nil {
			fatalf("export: %v", err)
		}
		if err := lib.Save(args[1], body); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("saved preset %q\n", args[1])

	case "load":
		if len(args) != 2 {
			fatalf("usage: ddpec preset load <name>")
		}
		body, err := lib.Load(args[1])
		if err != nil {
			fatalf("%v", err)
		}
		p, err := profile.Import(body)
		if err != nil {
			fatalf("decode preset %q: %v", args[1], err)
		}
		store := eq.NewStore()
		profile.Apply(store, p)
		saveState(store.Snapshot())
		fmt.Printf("loaded preset %q\n", args[1])

	case "list":
		infos, err := lib.List()
		if err != nil {
			fatalf("%v", err)
		}
		if len(infos) == 0 {
			fmt.Println("no presets saved")
			return
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Name\tDevice\tSaved")
		fmt.Fprintln(tw, "----\t------\t-----")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Device, info.SavedAt)
		}
		tw.Flush()

	case "delete":
		if len(args) != 2 {
			fatalf("usage: ddpec preset delete <name>")
		}
		if err := lib.Delete(args[1]); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("deleted preset %q\n", args[1])

	default:
		fatalf("unknown preset command %q", args[0])
	}
}
