// Command weathericons writes the weather icon SVG sources and renders them to PNG.
//
// Run it from the repository root:
//
//	$ go run ./cmd/weathericons
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esimov/weathericons"
	"github.com/esimov/weathericons/utils"
)

const helpBanner = `
weathericons: weather icon asset generator
    Version: %s

`

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], nil, os.Stderr)
	stop()

	os.Exit(code)
}

// run executes the generator and returns the process exit status.
// environ overrides the process environment when non nil.
func run(ctx context.Context, args []string, environ map[string]string, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	cfg, err := loadConfig(environ)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	flags := flag.NewFlagSet("weathericons", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		root      = flags.String("root", cfg.Root, "Repository root the assets directory is created in")
		backend   = flags.String("backend", cfg.Backend, "Renderer backend: auto, external or native")
		converter = flags.String("converter", cfg.Converter, "External converter command line")
		workers   = flags.Int("conc", cfg.Workers, "Number of icons to render concurrently")
		quiet     = flags.Bool("quiet", false, "Only print errors")
		version   = flags.Bool("version", false, "Print the version and exit")
	)
	flags.Usage = func() {
		fmt.Fprintf(stderr, helpBanner, Version)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *version {
		fmt.Fprintf(stderr, "weathericons version: %s\n", Version)
		return 0
	}

	p := utils.NewPrinter(stderr, cfg.NoColor == "" && utils.IsTerminal(stderr))

	mode, err := weathericons.ParseBackend(*backend)
	if err != nil {
		logger.Print(p.Decorate(err.Error(), utils.ErrorMessage))
		return 1
	}
	external, err := weathericons.NewExternalRenderer(*converter)
	if err != nil {
		logger.Print(p.Decorate(err.Error(), utils.ErrorMessage))
		return 1
	}

	// The backend is resolved before anything is written, so a missing renderer leaves the tree untouched.
	renderer, err := weathericons.Probe(weathericons.Candidates(mode, external)...)
	if err != nil {
		logger.Print(p.Decorate(weathericons.Remediation, utils.ErrorMessage))
		logger.Printf("\tReason: %v", err)
		return 1
	}

	gen := weathericons.NewGenerator(*root, renderer)
	gen.Workers = *workers
	if !*quiet {
		p.Printf("Generating transparent Weather SVGs and PNGs...\n")
		gen.Progress = func(res weathericons.Result) {
			p.Printf("Generated %s (using %s)\n",
				p.Decorate(res.Name+".png", utils.SuccessMessage),
				p.Decorate(res.Backend, utils.StatusMessage),
			)
		}
	}

	now := time.Now()
	if _, err := gen.Generate(ctx); err != nil {
		logger.Printf("%s %s",
			p.Decorate("Error generating the weather icons:", utils.ErrorMessage),
			p.Decorate(fmt.Sprintf("\n\tReason: %v", err), utils.DefaultMessage),
		)
		return 1
	}
	if !*quiet {
		p.Printf("\nExecution time: %s\n", p.Decorate(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
	return 0
}
