// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"media-scan/internal/config"
	"media-scan/internal/formatters"
	_ "media-scan/internal/formatters/json"
	_ "media-scan/internal/formatters/text"
	_ "media-scan/internal/formatters/yaml"
	"media-scan/internal/media"
	"media-scan/internal/monitoring"
	"media-scan/internal/router"
	"media-scan/internal/version"
)

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// cliFlags holds command line flag values
type cliFlags struct {
	mediaType   string
	format      string
	configFile  string
	outputFile  string
	noColor     bool
	debug       bool
	verbose     bool
	showVersion bool
}

func parseFlags() (*cliFlags, []string) {
	f := &cliFlags{}
	flag.StringVar(&f.mediaType, "type", "", "Media type of the input files: image or video (required)")
	flag.StringVar(&f.format, "format", "", "Output format: "+strings.Join(formatters.List(), ", "))
	flag.StringVar(&f.configFile, "config", "", "Path to configuration file")
	flag.StringVar(&f.outputFile, "output", "", "Write results to file instead of stdout")
	flag.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&f.verbose, "verbose", false, "Show absent metadata fields in text output")
	flag.BoolVar(&f.showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -type <image|video> [options] <file>...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts metadata from image and video files.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return f, flag.Args()
}

// applyEnvOverrides fills unset flags from the environment
func applyEnvOverrides(f *cliFlags) {
	// .env is optional
	_ = godotenv.Load()

	if f.configFile == "" {
		f.configFile = os.Getenv("MEDIA_SCAN_CONFIG")
	}
	if f.format == "" {
		f.format = os.Getenv("MEDIA_SCAN_FORMAT")
	}
	if !f.debug && os.Getenv("MEDIA_SCAN_DEBUG") == "true" {
		f.debug = true
	}
}

func main() {
	flags, files := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	applyEnvOverrides(flags)

	cfg := loadConfiguration(flags.configFile)

	format := flags.format
	if format == "" {
		format = cfg.Defaults.Format
	}
	noColor := flags.noColor || cfg.Defaults.NoColor
	debug := flags.debug || cfg.Defaults.Debug

	// Colors only make sense on a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) || flags.outputFile != "" {
		noColor = true
	}

	mediaType := media.Type(strings.ToLower(flags.mediaType))
	if !mediaType.Valid() {
		fmt.Fprintf(os.Stderr, "Error: -type must be %q or %q\n\n", media.TypeImage, media.TypeVideo)
		flag.Usage()
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no input files given\n\n")
		flag.Usage()
		os.Exit(1)
	}

	logger := monitoring.NewLogger(debug)
	defer func() { _ = logger.Sync() }()

	rtr := router.New(logger, cfg.MaxFileSize(), cfg.ParseTimeout())

	ctx := context.Background()
	results := make([]media.Result, 0, len(files))
	for _, file := range files {
		item := router.Item{
			ID:   uuid.New(),
			Path: file,
			Type: mediaType,
		}
		results = append(results, rtr.Route(ctx, item))
	}

	output, err := formatters.Export(format, results, formatters.FormatterOptions{
		Verbose: flags.verbose,
		NoColor: noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.outputFile != "" {
		if err := os.WriteFile(flags.outputFile, []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
	}
}
