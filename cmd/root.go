package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/boarding-sim/sim"
	"github.com/inference-sim/boarding-sim/sim/policy"
	"github.com/inference-sim/boarding-sim/sim/trace"
	"github.com/inference-sim/boarding-sim/storage"
)

var (
	// CLI flags for the cabin and episode
	logLevel        string  // Log verbosity level
	configPath      string  // Optional BoardingConfig YAML file
	numRows         int     // Number of cabin rows
	seatsPerRow     int     // Seats in every row
	baggageFraction float64 // Probability that a passenger carries luggage
	seed            int64   // Seed for baggage assignment and the random policy
	episodes        int     // Number of episodes to run
	policyName      string  // Built-in decision policy
	traceLevel      string  // Decision trace verbosity
	resultsDB       string  // SQLite file episode results are appended to
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "boarding-sim",
	Short: "Tick-based airplane boarding simulator",
}

// runCmd boards one or more episodes with a built-in policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run boarding episodes with a built-in policy",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		if !policy.ValidPolicies[policyName] {
			logrus.Fatalf("Unknown policy %q; valid policies: [random, back-to-front, front-to-back, round-robin]", policyName)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q; valid levels: [none, decisions]", traceLevel)
		}
		if episodes < 1 {
			logrus.Fatalf("--episodes must be at least 1, got %d", episodes)
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Starting %d episode(s): %d rows x %d seats, policy=%s, baggage fraction %.2f, seed=%d",
			episodes, cfg.NumRows, cfg.SeatsPerRow, policyName, cfg.BaggageFraction, cfg.Seed)

		var repo *storage.EpisodeRepository
		if resultsDB != "" {
			db, err := storage.InitSQLite(resultsDB)
			if err != nil {
				logrus.Fatalf("Failed to open results database: %v", err)
			}
			defer db.Close()
			repo = storage.NewEpisodeRepository(db)
		}

		results, err := runEpisodes(context.Background(), cfg, policyName, episodes, trace.TraceLevel(traceLevel), repo)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		printSummary(results)
		logrus.Info("Boarding complete.")
	},
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig starts from --config (or defaults) and applies only the
// flags the user actually set.
func resolveConfig(cmd *cobra.Command) (sim.BoardingConfig, error) {
	cfg := sim.NewBoardingConfig(numRows, seatsPerRow)
	cfg.BaggageFraction = baggageFraction
	cfg.Seed = seed
	if configPath != "" {
		loaded, err := sim.LoadBoardingConfig(configPath)
		if err != nil {
			return sim.BoardingConfig{}, err
		}
		cfg = *loaded
		if cmd.Flags().Changed("rows") {
			cfg.NumRows = numRows
		}
		if cmd.Flags().Changed("seats") {
			cfg.SeatsPerRow = seatsPerRow
		}
		if cmd.Flags().Changed("baggage-fraction") {
			cfg.BaggageFraction = baggageFraction
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
	}
	if err := cfg.Validate(); err != nil {
		return sim.BoardingConfig{}, err
	}
	return cfg, nil
}

// runEpisodes boards n episodes. Episode i uses seed cfg.Seed+i so repeated
// episodes differ while the whole batch stays reproducible. Results are
// saved to repo when it is non-nil.
func runEpisodes(ctx context.Context, cfg sim.BoardingConfig, name string, n int, level trace.TraceLevel, repo *storage.EpisodeRepository) ([]*policy.EpisodeResult, error) {
	results := make([]*policy.EpisodeResult, 0, n)
	for i := 0; i < n; i++ {
		epCfg := cfg
		epCfg.Seed = cfg.Seed + int64(i)
		bt := trace.NewBoardingTrace(trace.TraceConfig{Level: level})

		res, err := policy.RunEpisode(epCfg, name, policy.NewPolicy(name, epCfg.Seed), bt)
		if err != nil {
			return nil, fmt.Errorf("episode %d: %w", i, err)
		}
		if bt.Config.Enabled() {
			printTraceSummary(trace.Summarize(bt))
		}
		if repo != nil {
			if err := repo.Save(ctx, res); err != nil {
				return nil, err
			}
		}
		results = append(results, res)
	}
	return results, nil
}

func printSummary(results []*policy.EpisodeResult) {
	if len(results) == 1 {
		results[0].Metrics.Print()
		return
	}
	fmt.Println("=== Boarding Results ===")
	total := 0.0
	for _, r := range results {
		fmt.Printf("%s  seed=%-6d decisions=%-4d ticks=%-5d stow=%-4d reward=%.2f\n",
			r.ID, r.Seed, r.Decisions, r.Ticks, r.StowEvents, r.TotalReward)
		total += r.TotalReward
	}
	if len(results) > 0 {
		fmt.Printf("Mean Episode Reward  : %.2f\n", total/float64(len(results)))
	}
}

func printTraceSummary(s *trace.TraceSummary) {
	fmt.Println("=== Decision Trace ===")
	fmt.Printf("Decisions            : %d\n", s.TotalDecisions)
	fmt.Printf("Reward mean/min/max  : %.2f / %.2f / %.2f\n", s.MeanReward, s.MinReward, s.MaxReward)
	fmt.Printf("Max Waiting          : %d\n", s.MaxWaiting)
	fmt.Printf("Drain Ticks          : %d\n", s.DrainTicks)
	fmt.Printf("Row Releases         : %v\n", s.RowDistribution)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a BoardingConfig YAML file; explicit flags override its values")
	runCmd.Flags().IntVar(&numRows, "rows", 10, "Number of cabin rows")
	runCmd.Flags().IntVar(&seatsPerRow, "seats", 6, "Seats per row")
	runCmd.Flags().Float64Var(&baggageFraction, "baggage-fraction", 1.0, "Probability that a passenger carries luggage")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for baggage assignment and the random policy")
	runCmd.Flags().IntVar(&episodes, "episodes", 1, "Number of episodes to run")
	runCmd.Flags().StringVar(&policyName, "policy", "back-to-front", "Decision policy (random, back-to-front, front-to-back, round-robin)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&resultsDB, "results-db", "", "SQLite file to append episode results to")

	rootCmd.AddCommand(runCmd)
}
