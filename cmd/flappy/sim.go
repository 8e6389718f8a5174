package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagMargin   float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless rounds with the autopilot",
	Long: `Play rounds without a terminal UI. The autopilot flaps whenever the
bird sinks toward the bottom of the next gap. Run i uses seed --seed + i,
so a fixed --seed reproduces the same obstacles and outcomes.

Examples:
  flappy sim
  flappy sim --runs 10 --seed 7
  flappy sim --max-ticks 2000 --margin 4`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of rounds to play")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Stop a round that survives this many ticks")
	simCmd.Flags().Float64Var(&flagMargin, "margin", flappy.DefaultAutopilot().Margin, "Autopilot clearance above the lower pipe")
}

// simOptions controls a headless batch.
type simOptions struct {
	Seed     uint64
	Runs     int
	MaxTicks int
	Pilot    flappy.Autopilot
}

// simResult is the outcome of one headless round.
type simResult struct {
	Seed    uint64
	Score   int
	Ticks   int
	Crashed bool
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	store, err := storage.Open()
	if err != nil {
		logger.Fatal("cannot open leaderboard", "err", err)
	}
	defer store.Close()

	opts := simOptions{
		Seed:     seed,
		Runs:     flagRuns,
		MaxTicks: flagMaxTicks,
		Pilot:    flappy.Autopilot{Margin: flagMargin},
	}
	if err := simulate(os.Stdout, cfg, opts, store, logger); err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

// simulate plays opts.Runs rounds, records them in store and prints a
// summary to w.
func simulate(w io.Writer, cfg config.FlappyConfig, opts simOptions, store *storage.Store, logger *log.Logger) error {
	if opts.Runs <= 0 || opts.MaxTicks <= 0 {
		return fmt.Errorf("runs and max-ticks must be positive, got %d and %d", opts.Runs, opts.MaxTicks)
	}

	fmt.Fprintf(w, "  %-4s  %-20s  %6s  %7s  %s\n", "Run", "Seed", "Score", "Ticks", "Outcome")
	fmt.Fprintf(w, "  %-4s  %-20s  %6s  %7s  %s\n", "---", "----", "-----", "-----", "-------")

	for i := 0; i < opts.Runs; i++ {
		res, err := playRound(cfg, opts.Seed+uint64(i), opts.MaxTicks, opts.Pilot)
		if err != nil {
			return err
		}

		id, err := store.SaveRun("autopilot", res.Score, res.Ticks)
		if err != nil {
			return err
		}
		logger.Debug("round finished", "run", id, "seed", res.Seed, "score", res.Score, "ticks", res.Ticks)

		outcome := "survived"
		if res.Crashed {
			outcome = "crashed"
		}
		fmt.Fprintf(w, "  %-4d  %-20d  %6d  %7d  %s\n", i+1, res.Seed, res.Score, res.Ticks, outcome)
	}

	st, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Best: %d  Average: %.2f  Ticks: %d\n", st.Runs, st.Best, st.Average, st.TotalTicks)
	return nil
}

// playRound plays one round with the autopilot until it crashes or
// reaches maxTicks.
func playRound(cfg config.FlappyConfig, seed uint64, maxTicks int, pilot flappy.Autopilot) (simResult, error) {
	sim, err := flappy.NewWithConfig(cfg, flappy.NewRandomHeights(seed))
	if err != nil {
		return simResult{}, err
	}

	sim.Play()
	state := sim.State()
	for ticks := 0; ticks < maxTicks && state == flappy.StatePlaying; ticks++ {
		if pilot.ShouldJump(sim.Snapshot()) {
			sim.Jump()
		}
		state = sim.Tick()
	}

	snap := sim.Snapshot()
	return simResult{
		Seed:    seed,
		Score:   snap.Score,
		Ticks:   snap.Tick,
		Crashed: state == flappy.StateOver,
	}, nil
}
