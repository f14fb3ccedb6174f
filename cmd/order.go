// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
)

func newOrderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Show the spiral visiting order for the grid dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd.OutOrStdout()).Order(a.cfg.Width, a.cfg.Height)
		},
	}
}
