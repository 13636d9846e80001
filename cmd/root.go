package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boarding-sim/boarding-sim/sim"
	"github.com/boarding-sim/boarding-sim/sim/boarding"
	"github.com/boarding-sim/boarding-sim/sim/trace"
)

// defaultMaxTicks bounds the driver loop when no explicit horizon is set.
// A valid run finishes orders of magnitude earlier; hitting the bound means
// the engine deadlocked, which the simulation contract says cannot happen.
const defaultMaxTicks = 1_000_000

var (
	// CLI flags for the boarding scenario
	rows          int     // Number of seat rows in the cabin
	passengers    int     // Passenger count (0 = full plane, rows x 6)
	policyName    string  // Boarding policy (name or index 0..5)
	latePercent   float64 // Percentage of passengers arriving late
	lateImmediate bool    // Late passengers merge into the queue immediately instead of boarding last
	seed          int64   // Seed for queue generation and late-arrival draws
	maxTicks      int64   // Safety bound on simulated ticks (0 = default)
	logLevel      string  // Log verbosity level
	scenarioPath  string  // YAML scenario file overriding the flags above
	traceOut      string  // Path for a per-tick JSON frame trace
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "boarding-sim",
	Short: "Discrete-time simulator for airplane boarding strategies",
}

// runCmd executes the simulation using parameters from CLI flags or a
// scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a boarding simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc := &boarding.Scenario{
			Rows:          rows,
			Passengers:    passengers,
			Policy:        policyName,
			LatePercent:   latePercent,
			LateImmediate: lateImmediate,
			Seed:          seed,
			MaxTicks:      maxTicks,
		}
		if scenarioPath != "" {
			sc, err = boarding.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario: %v", err)
			}
		} else if err := sc.Validate(); err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		policy, err := boarding.ParsePolicy(sc.Policy)
		if err != nil {
			logrus.Fatalf("invalid policy: %v", err)
		}

		// Build the boarding queue: policy generator, then late arrivals.
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(sc.Seed))
		queue, err := boarding.Generate(policy, sc.Rows, sc.PassengerCount(), rng.ForSubsystem(sim.SubsystemBoarding))
		if err != nil {
			logrus.Fatalf("unable to generate boarding queue: %v", err)
		}
		queue = boarding.ApplyLate(queue, sc.LatePercent, sc.LateImmediate, rng.ForSubsystem(sim.SubsystemLate))

		logrus.Infof("Starting boarding: rows=%d passengers=%d policy=%s late=%.1f%% immediate=%v seed=%d",
			sc.Rows, len(queue), policy, sc.LatePercent, sc.LateImmediate, sc.Seed)

		startTime := time.Now()

		s := sim.NewSimulator(sc.Rows, queue)

		var rec *trace.Recorder
		if traceOut != "" {
			rec = trace.NewRecorder()
		}

		limit := sc.MaxTicks
		if limit <= 0 {
			limit = defaultMaxTicks
		}
		// Drive the engine one tick per loop iteration; the engine itself
		// never loops or blocks.
		done := false
		for t := int64(0); t < limit && !done; t++ {
			done = s.Tick()
			if rec != nil {
				rec.Record(s.Snapshot())
			}
		}
		if !done {
			logrus.Warnf("boarding did not complete within %d ticks", limit)
		}

		if rec != nil {
			if err := rec.WriteFile(traceOut); err != nil {
				logrus.Fatalf("unable to write trace: %v", err)
			}
			logrus.Infof("Wrote %d frames to %s (run %s)", rec.Len(), traceOut, rec.RunID)
		}

		s.Metrics.Print()
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&rows, "rows", 33, "Number of seat rows in the cabin")
	runCmd.Flags().IntVar(&passengers, "passengers", 0, "Passenger count (0 = full plane)")
	runCmd.Flags().StringVar(&policyName, "policy", "random", "Boarding policy (random, back-to-front, window-to-aisle, skip-rows, zones, four-groups, or 0..5)")
	runCmd.Flags().Float64Var(&latePercent, "late-percent", 0, "Percentage of passengers arriving late (0..100)")
	runCmd.Flags().BoolVar(&lateImmediate, "late-immediate", false, "Late passengers merge into the queue immediately instead of boarding last")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random queue generation")
	runCmd.Flags().Int64Var(&maxTicks, "max-ticks", 0, "Safety bound on simulated ticks (0 = default)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file overriding the flags above")
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "Write a per-tick JSON frame trace to this path")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
