package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/wpstext/internal/app"
)

// errUsage is returned by parseArgs when the command line is malformed.
var errUsage = errors.New("usage")

// errVersion is returned by parseArgs after -version printed build info.
var errVersion = errors.New("version requested")

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, errVersion):
		return
	case errors.Is(err, errUsage):
		os.Exit(1)
	case err != nil:
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Str("input", cfg.InputPath).Msg("extraction failed")
		os.Exit(1)
	}
}

// parseArgs builds the runtime configuration from command-line arguments and
// the optional config file. Usage problems are reported on stderr.
func parseArgs(args []string, stderr io.Writer) (app.Config, error) {
	var (
		cfg        app.Config
		configPath string
		format     string
		verbose    bool
		version    bool
	)

	fs := flag.NewFlagSet("wpstext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wpstext [flags] <file.wps>")
		fs.PrintDefaults()
	}
	fs.StringVar(&configPath, "config", "", "Path to YAML or JSON config file with heuristic overrides")
	fs.StringVar(&format, "format", app.FormatLines, "Output format: 'lines' or 'poem' (Markdown with front matter)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&version, "version", false, "Print version information and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, errUsage
	}
	if version {
		fmt.Fprintln(stderr, app.VersionString())
		return cfg, errVersion
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, errUsage
	}

	cfg.InputPath = fs.Arg(0)
	cfg.Format = strings.TrimSpace(format)
	cfg.Verbose = verbose

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", configPath, err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	return cfg, nil
}

func run(cfg app.Config, out io.Writer) error {
	a, err := app.New(cfg, out)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run()
}
