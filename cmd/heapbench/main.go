// Package main implements the heapbench binary: it loads a benchmark CSV,
// runs the aggregation and complexity-verification engine over it, prints
// the report, and exports the numeric series consumed by the external
// rendering step.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heapbench/heapbench/internal/config"
	"github.com/heapbench/heapbench/internal/engine"
	"github.com/heapbench/heapbench/internal/export"
	"github.com/heapbench/heapbench/internal/loader"
	"github.com/heapbench/heapbench/internal/report"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		configFile  string
		cvThreshold float64
		concurrency int
		outputDir   string
		noExport    bool
		showVersion bool
		showHelp    bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.Float64Var(&cvThreshold, "cv-threshold", 0, "CV percent threshold for confirming n log n scaling")
	flag.IntVar(&concurrency, "concurrency", 0, "Workers for per-size aggregation (<= 1 is sequential)")
	flag.StringVar(&outputDir, "output-dir", "", "Directory for exported series files")
	flag.BoolVar(&noExport, "no-export", false, "Skip writing series files for the renderer")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showHelp, "help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Heapbench - Sorting benchmark aggregation and complexity verification\n\n")
		fmt.Fprintf(os.Stderr, "Usage: heapbench [options] <results.csv>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  heapbench results.csv\n")
		fmt.Fprintf(os.Stderr, "  heapbench --cv-threshold 10 results.csv\n")
		fmt.Fprintf(os.Stderr, "  heapbench --config heapbench.yaml results.csv\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  HEAPBENCH_CV_THRESHOLD_PERCENT   CV acceptance threshold\n")
		fmt.Fprintf(os.Stderr, "  HEAPBENCH_ENGINE_CONCURRENCY     Aggregation worker count\n")
		fmt.Fprintf(os.Stderr, "  HEAPBENCH_EXPORT_ENABLED         Enable/disable series export\n")
		fmt.Fprintf(os.Stderr, "  HEAPBENCH_EXPORT_OUTPUT_DIR      Series output directory\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("heapbench version %s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	cfg, err := loadConfig(configFile, cvThreshold, concurrency, outputDir, noExport)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Reading data from: %s", inputPath)
	dataset, err := loader.LoadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to load trials: %v", err)
	}

	e := &engine.Engine{
		Concurrency:        cfg.Engine.Concurrency,
		CVThresholdPercent: cfg.Verify.CVThresholdPercent,
	}
	analysis, err := e.Analyze(dataset.Trials)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	rep := report.New(inputPath, dataset.Fingerprint, len(dataset.Trials), analysis)
	fmt.Print(rep.Render())

	if cfg.Export.Enabled {
		writer := export.NewWriter(cfg.Export.OutputDir)
		paths, err := writer.WriteAll(analysis)
		if err != nil {
			log.Fatalf("Series export failed: %v", err)
		}
		for _, path := range paths {
			log.Printf("Saved: %s", path)
		}
	}
}

// loadConfig loads configuration from file, environment, and command line
// flags, in increasing order of priority.
func loadConfig(configFile string, cvThreshold float64, concurrency int, outputDir string, noExport bool) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	config.LoadDotEnv()
	config.LoadFromEnv(cfg)

	if cvThreshold > 0 {
		cfg.Verify.CVThresholdPercent = cvThreshold
	}
	if concurrency > 0 {
		cfg.Engine.Concurrency = concurrency
	}
	if outputDir != "" {
		cfg.Export.OutputDir = outputDir
	}
	if noExport {
		cfg.Export.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
