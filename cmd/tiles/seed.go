package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [w:h:m:f]",
	Short: "Check game parameters and print their seed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := gameParams(args)
		if err != nil {
			return err
		}
		w, h, m, f := params.Unpack()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dx%d, %d mines, forgiving: %t\n",
			params.Seed(), w, h, m, f,
		)
		return nil
	},
}
