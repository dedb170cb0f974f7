// tiles is a terminal minesweeper.
//
// Usage:
//
//	tiles [play] [preset|seed]   - play in the terminal (default)
//	tiles simulate               - let the autoplayer play many games
//	tiles seed [w:h:m:f]         - check and print game parameters
//
// Global flags:
//
//	-c, --config <path>  - JSON or YAML config file
//	--seed <value>       - RNG seed (0 = random)
//	--preset <name>      - beginner, intermediate, expert or default
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/songe/minesweeper/internal/config"
	"github.com/songe/minesweeper/internal/mines"
)

var (
	log = logrus.New()
	cfg config.Config

	flagConfig string
	flagSeed   uint64
	flagPreset string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper in your terminal.

Examples:
  tiles
  tiles play expert
  tiles play 16:16:40:1
  tiles simulate --games 10000 --preset intermediate
  tiles seed 30:16:99:0`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path (.json, .yaml)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "board preset")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(seedCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(flagConfig); err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagPreset != "" {
		preset, ok := mines.Preset(flagPreset)
		if !ok {
			return fmt.Errorf("unknown preset %q", flagPreset)
		}
		preset.Forgiving = cfg.Game.Forgiving
		cfg.Game = preset
	}

	if err := setupLogging(); err != nil {
		return err
	}
	log.Debug("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")
	return nil
}

func newRand() *rand.Rand {
	if cfg.Seed == 0 {
		return mines.NewRand()
	}
	return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
}

// gameParams picks the board from a preset name or seed argument, falling
// back to the configured one.
func gameParams(args []string) (mines.GameParams, error) {
	if len(args) == 0 {
		return cfg.Game, nil
	}
	if preset, ok := mines.Preset(args[0]); ok {
		preset.Forgiving = cfg.Game.Forgiving
		return preset, nil
	}
	params, err := mines.ParseSeed(args[0])
	if err != nil {
		return cfg.Game, err
	}
	return *params, nil
}
