// Command ddpec manages a ten-band parametric equalizer from the command
// line: edit bands, sample the response curve, exchange profiles in JSON or
// text form, and keep named presets in a local SQLite library.
//
// Usage:
//
//	ddpec <command> [flags] [args]
//
// State lives in a JSON profile file named by DDPEC_PROFILE (default
// ddpec.json in the working directory); presets live in a SQLite database
// named by DDPEC_PRESET_DB. A .env file in the working directory is loaded
// when present.
//
// Examples:
//
//	ddpec show
//	ddpec set -band 1 fc=34 gain=-2.6 q=0.8
//	ddpec preamp -- -8
//	ddpec curve -points 32
//	ddpec import headphone.txt
//	ddpec preset save night
package main

import (
	"fmt"
	"os"

	"github.com/erikyo/DDPEC/profile"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

var errHeader = color.New(color.FgRed, color.Bold)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "show":
		cmdShow(os.Args[2:])
	case "set":
		cmdSet(os.Args[2:])
	case "preamp":
		cmdPreamp(os.Args[2:])
	case "reset":
		cmdReset(os.Args[2:])
	case "curve":
		cmdCurve(os.Args[2:])
	case "spectrum":
		cmdSpectrum(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	case "preset":
		cmdPreset(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fatalf("unknown command %q (run ddpec help)", os.Args[1])
	}
}

func printUsage() {
	fmt.Println("usage: ddpec <command> [flags] [args]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  show                                    print the current bands and preamp")
	fmt.Println("  set -band <n> <field>=<value> ...       edit one band (fc, gain, q, type, enabled)")
	fmt.Println("  preamp <dB>                             set the global pre-amp gain")
	fmt.Println("  reset                                   restore the default state")
	fmt.Println("  curve [-points N] [-min Hz] [-max Hz]   sample the response curve")
	fmt.Println("  spectrum [-fft N]                       cross-check the curve against an FFT measurement")
	fmt.Println("  import <file>                           load a JSON or text profile")
	fmt.Println("  export [-format json|text] [-o file]    write the current profile")
	fmt.Println("  preset save|load|list|delete [name]     manage the preset library")
	fmt.Println()
	fmt.Println("environment:")
	fmt.Println("  DDPEC_PROFILE    profile file holding current state (default ddpec.json)")
	fmt.Println("  DDPEC_PRESET_DB  preset database path (default ddpec-presets.db)")
	fmt.Println("  DDPEC_DEVICE     device tag for exported profiles")
}

func fatalf(format string, args ...any) {
	errHeader.Fprint(os.Stderr, "error: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func profilePath() string  { return envOr("DDPEC_PROFILE", "ddpec.json") }
func presetDBPath() string { return envOr("DDPEC_PRESET_DB", "ddpec-presets.db") }
func deviceTag() string    { return envOr("DDPEC_DEVICE", profile.DefaultDevice) }
