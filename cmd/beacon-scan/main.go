// Package main provides beacon-scan, which reads sensor readings and reports
// the covered positions on one row and the single uncovered point of a
// bounded square region.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/banshee-data/beacon.report/internal/config"
	"github.com/banshee-data/beacon.report/internal/coverage"
	"github.com/banshee-data/beacon.report/internal/fsutil"
	"github.com/banshee-data/beacon.report/internal/geom"
	"github.com/banshee-data/beacon.report/internal/monitoring"
	"github.com/banshee-data/beacon.report/internal/render"
	"github.com/banshee-data/beacon.report/internal/report"
	"github.com/banshee-data/beacon.report/internal/sensor"
	"github.com/banshee-data/beacon.report/internal/timeutil"
	"github.com/banshee-data/beacon.report/internal/version"
)

// maxProfileRows caps the rows sampled for the HTML profile.
const maxProfileRows = 2000

// Config holds the command line options. Query parameters are collected in
// Scan and only contain the flags that were set explicitly.
type Config struct {
	InputFile   string
	ConfigFile  string
	JSONFile    string
	PlotFile    string
	ProfileFile string
	Verbose     bool
	ShowVersion bool
	Scan        *config.ScanConfig
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	deps := runtimeDeps{
		fs:     fsutil.OSFileSystem{},
		clock:  timeutil.RealClock{},
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	if err := run(cfg, deps); err != nil {
		log.Fatalf("beacon-scan: %v", err)
	}
}

func parseFlags(args []string) (Config, error) {
	cfg := Config{}
	fs := flag.NewFlagSet("beacon-scan", flag.ContinueOnError)

	var row, limit, multiplier int64
	var workers int
	fs.StringVar(&cfg.InputFile, "input", "", "Readings file (default stdin)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Scan config JSON (e.g., config/scan.defaults.json)")
	fs.StringVar(&cfg.JSONFile, "json", "", "Write the result as JSON to this path")
	fs.StringVar(&cfg.PlotFile, "plot", "", "Write a PNG of the sensor field to this path")
	fs.StringVar(&cfg.ProfileFile, "profile", "", "Write an HTML row coverage profile to this path")
	fs.Int64Var(&row, "row", config.DefaultRow, "Row (y) for the coverage count")
	fs.Int64Var(&limit, "limit", config.DefaultLimit, "Search the gap in [0, limit]²")
	fs.Int64Var(&multiplier, "multiplier", config.DefaultMultiplier, "Score = x*multiplier + y")
	fs.IntVar(&workers, "workers", config.DefaultWorkers, "Goroutines for the gap search")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Scan = config.EmptyScanConfig()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "row":
			cfg.Scan.Row = &row
		case "limit":
			cfg.Scan.Limit = &limit
		case "multiplier":
			cfg.Scan.Multiplier = &multiplier
		case "workers":
			cfg.Scan.Workers = &workers
		}
	})
	return cfg, nil
}

type runtimeDeps struct {
	fs     fsutil.FileSystem
	clock  timeutil.Clock
	stdin  io.Reader
	stdout io.Writer
}

// resolveScanConfig layers defaults, the config file and explicit flags.
func resolveScanConfig(cfg Config) (*config.ScanConfig, error) {
	scan := config.DefaultScanConfig()
	if cfg.ConfigFile != "" {
		loaded, err := config.LoadScanConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		scan.Merge(loaded)
	}
	scan.Merge(cfg.Scan)
	if err := scan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return scan, nil
}

func loadSensors(deps runtimeDeps, path string) (*sensor.Set, error) {
	in, err := fsutil.OpenInput(deps.fs, path, deps.stdin)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	readings, err := sensor.ParseReadings(in)
	if err != nil {
		return nil, err
	}
	return sensor.NewSet(readings)
}

func run(cfg Config, deps runtimeDeps) error {
	if cfg.ShowVersion {
		_, err := fmt.Fprintln(deps.stdout, version.String())
		return err
	}
	monitoring.SetVerbose(cfg.Verbose)

	scan, err := resolveScanConfig(cfg)
	if err != nil {
		return err
	}

	set, err := loadSensors(deps, cfg.InputFile)
	if err != nil {
		return err
	}
	monitoring.Debugf("loaded %d sensors, %d distinct beacons", set.Len(), len(set.Beacons()))

	row, limit := scan.GetRow(), scan.GetLimit()
	region := geom.Square(limit)
	finder := coverage.GapFinder{Workers: scan.GetWorkers()}

	// The two queries only read the set, so they run side by side.
	start := deps.clock.Now()
	var covered int64
	var gap geom.Point
	var g errgroup.Group
	g.Go(func() error {
		covered = coverage.Row(set, row)
		return nil
	})
	g.Go(func() error {
		var err error
		gap, err = finder.Find(set.Sensors(), region)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("gap search in [0,%d]²: %w", limit, err)
	}
	elapsed := deps.clock.Since(start)
	monitoring.Debugf("queries finished in %v", elapsed)

	result, err := report.New(row, covered, limit, scan.GetMultiplier(), gap, elapsed)
	if err != nil {
		return err
	}
	if err := result.WriteText(deps.stdout); err != nil {
		return err
	}

	if cfg.JSONFile != "" {
		if err := writeJSON(deps.fs, cfg.JSONFile, result); err != nil {
			return err
		}
		monitoring.Logf("Results exported to: %s", cfg.JSONFile)
	}

	if cfg.PlotFile != "" {
		scene := render.Scene{
			Sensors: set.Sensors(),
			Beacons: set.Beacons(),
			Region:  region,
			Gap:     &gap,
			Row:     &row,
		}
		if err := render.GeometryPNG(deps.fs, cfg.PlotFile, scene); err != nil {
			return err
		}
		monitoring.Logf("Geometry plot written to: %s", cfg.PlotFile)
	}

	if cfg.ProfileFile != "" {
		if err := writeProfile(deps.fs, cfg.ProfileFile, set, scan, row); err != nil {
			return err
		}
		monitoring.Logf("Row profile written to: %s", cfg.ProfileFile)
	}

	return nil
}

func writeJSON(fsys fsutil.FileSystem, path string, result *report.Result) error {
	w, err := fsutil.CreateOutput(fsys, path)
	if err != nil {
		return fmt.Errorf("create json output: %w", err)
	}
	if err := result.WriteJSON(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("write json output: %w", err)
	}
	return w.Close()
}

func writeProfile(fsys fsutil.FileSystem, path string, set *sensor.Set, scan *config.ScanConfig, row int64) error {
	margin := scan.GetProfileMargin()
	from, to := -margin, scan.GetLimit()+margin
	step := coverage.ProfileStep(from, to, maxProfileRows)

	stats, err := coverage.Profile(set, from, to, step)
	if err != nil {
		return err
	}
	stats = coverage.IncludeRow(stats, set, row)
	monitoring.Debugf("profile: %d rows from %d to %d step %d", len(stats), from, to, step)

	w, err := fsutil.CreateOutput(fsys, path)
	if err != nil {
		return fmt.Errorf("create profile output: %w", err)
	}
	if err := render.ProfileHTML(w, stats, row); err != nil {
		_ = w.Close()
		return fmt.Errorf("write profile output: %w", err)
	}
	return w.Close()
}
