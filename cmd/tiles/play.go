package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/songe/minesweeper/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play [preset|seed]",
	Short: "Play in the terminal",
	Long: `Play a game in the terminal. Type help at the prompt for commands.

Examples:
  tiles play
  tiles play beginner
  tiles play 8:8:10:1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	params, err := gameParams(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	c := console.New(log, params, newRand(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err := c.NewGame(params); err != nil {
		return err
	}
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
