package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prodline-sim/prodline-sim/sim"
	"github.com/prodline-sim/prodline-sim/sim/record"
)

var (
	logLevel     string // Log verbosity level
	scenarioPath string // Optional YAML scenario replacing the parameter flags
	recordRun    bool   // Persist the snapshot series to SQLite
	outputPath   string // Recording database path (auto-named when empty)

	cfg = sim.DefaultConfig()
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "prodline-sim",
	Short: "Discrete-event simulator for a three-stage production line",
}

// runCmd executes one simulation using parameters from CLI flags or a
// scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the production line simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		runCfg := cfg
		if scenarioPath != "" {
			// The scenario file carries the full parameter set and replaces
			// the individual flags.
			runCfg, err = LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %s: %v", scenarioPath, err)
			}
			logrus.Infof("Using scenario %s", scenarioPath)
		}

		records, err := sim.Run(runCfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		sim.Summarize(records).Print()

		if recordRun {
			persistRecords(runCfg, records)
		}
	},
}

// persistRecords writes the snapshot series to a SQLite database.
func persistRecords(runCfg sim.Config, records []sim.Snapshot) {
	path := outputPath
	if path == "" {
		path = record.DefaultPath()
	}

	rec, err := record.Open(path)
	if err != nil {
		logrus.Fatalf("Failed to open recording database: %v", err)
	}
	defer rec.Close()

	runID, err := rec.BeginRun(runCfg)
	if err != nil {
		logrus.Fatalf("Failed to register run: %v", err)
	}
	if err := rec.WriteSnapshots(runID, records); err != nil {
		logrus.Fatalf("Failed to record snapshots: %v", err)
	}
	logrus.Infof("Snapshot series recorded to %s (run %d)", path, runID)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (replaces parameter flags)")
	runCmd.Flags().BoolVar(&recordRun, "record", false, "Persist the snapshot series to a SQLite database")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Recording database path (auto-named when empty)")

	// Production line parameters; defaults mirror the reference line.
	runCmd.Flags().Float64Var(&cfg.ArrivalRate, "arrival-rate", cfg.ArrivalRate, "Order arrivals per minute")
	runCmd.Flags().IntVar(&cfg.Buffer1Capacity, "buffer1-capacity", cfg.Buffer1Capacity, "WIP slots between Station A and Station B")
	runCmd.Flags().IntVar(&cfg.Buffer2Capacity, "buffer2-capacity", cfg.Buffer2Capacity, "WIP slots between Station B and the terminal fleet")
	runCmd.Flags().Float64Var(&cfg.StationARate, "station-a-rate", cfg.StationARate, "Station A processing rate (units/min)")
	runCmd.Flags().Float64Var(&cfg.StationBRate, "station-b-rate", cfg.StationBRate, "Station B processing rate (units/min)")
	runCmd.Flags().Float64Var(&cfg.TerminalRate, "terminal-rate", cfg.TerminalRate, "Per-worker terminal processing rate (units/min)")
	runCmd.Flags().IntVar(&cfg.TerminalWorkers, "terminal-workers", cfg.TerminalWorkers, "Number of parallel terminal workers")
	runCmd.Flags().Float64Var(&cfg.StationARetry, "station-a-retry", cfg.StationARetry, "Station A retry delay when buffer 1 is full (min)")
	runCmd.Flags().Float64Var(&cfg.StationBRetry, "station-b-retry", cfg.StationBRetry, "Station B retry delay when buffer 2 is full (min)")
	runCmd.Flags().Float64Var(&cfg.HorizonMinutes, "horizon", cfg.HorizonMinutes, "Simulation horizon (minutes)")
	runCmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the run's randomness")

	rootCmd.AddCommand(runCmd)
}
