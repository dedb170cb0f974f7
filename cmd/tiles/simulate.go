package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/songe/minesweeper/internal/autoplay"
	"github.com/songe/minesweeper/internal/mines"
)

var (
	flagGames   int
	flagWorkers int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [preset|seed]",
	Short: "Let the autoplayer play many games",
	Long: `Play many games with the autoplayer and print how it did.
With --seed the run is repeatable.

Examples:
  tiles simulate
  tiles simulate expert --games 5000 --workers 8
  tiles simulate 16:16:40:1 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 1000, "number of games")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel games (0 = one per CPU)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	params, err := gameParams(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = mines.NewRand().Uint64()
	}
	log.WithField("params", params.Seed()).WithField("seed", seed).Info("simulating")

	stats, err := autoplay.Simulate(ctx, params, autoplay.Options{
		Games:   flagGames,
		Workers: flagWorkers,
		Seed:    seed,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", params.Seed(), stats)
	return err
}
