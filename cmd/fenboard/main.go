// fenboard decodes FEN chess positions and draws them as text grids.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/server"
)

const programVersion = "0.1.0"

// shutdownSignals stop a batch run or the HTTP server gracefully.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if cfg.Server.Enabled() {
		if err := server.New(cfg).Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := run(ctx, cfg, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg, stats)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// run processes the -fen encoding, the named files, or stdin.
func run(ctx context.Context, cfg *config.Config, args []string) (Stats, error) {
	matcher, err := buildMatcher(cfg.Filter)
	if err != nil {
		return Stats{}, err
	}
	p := NewProcessor(cfg)
	p.SetMatcher(matcher)

	err = processAllInputs(ctx, p, args)
	if closeErr := p.Close(); err == nil {
		err = closeErr
	}
	return p.Stats(), err
}

// processAllInputs feeds every input to the processor in order.
func processAllInputs(ctx context.Context, p *Processor, args []string) error {
	if *fenString != "" {
		return p.ProcessLine(*fenString, "-fen", 0)
	}

	if len(args) == 0 {
		return p.ProcessReader(ctx, os.Stdin, "")
	}

	for _, filename := range args {
		if p.Stopped() {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}

		err = p.ProcessReader(ctx, file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats Stats) {
	writeStatistics(cfg.LogFile, stats, cfg.Duplicate.Enabled())
}

func writeStatistics(w io.Writer, stats Stats, duplicates bool) {
	if duplicates {
		fmt.Fprintf(w, "%d position(s) output, %d duplicate(s), %d invalid, out of %d.\n",
			stats.Written, stats.Duplicates, stats.Failed, stats.Read)
	} else {
		fmt.Fprintf(w, "%d position(s) output, %d invalid, out of %d.\n",
			stats.Written, stats.Failed, stats.Read)
	}
	if stats.Skipped > 0 {
		fmt.Fprintf(w, "%d position(s) did not match the selection.\n", stats.Skipped)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenboard [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Decodes FEN chess positions, one per line, and draws each as an 8x8 grid.\n")
	fmt.Fprintf(os.Stderr, "Lines starting with # are ignored. Reads stdin when no files are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nHTTP API (-serve):\n")
	fmt.Fprintf(os.Stderr, "  GET  /healthz               liveness check\n")
	fmt.Fprintf(os.Stderr, "  POST /api/parse             {\"fen\": \"...\"} -> position as JSON\n")
	fmt.Fprintf(os.Stderr, "  GET  /api/render?fen=...    position as a text grid\n")
	fmt.Fprintf(os.Stderr, "  GET  /api/stats             distinct positions seen\n")
}
