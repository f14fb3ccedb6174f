// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/routecipher/matrix"
)

func newGridCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grid [text...]",
		Short: "Show the plaintext grid before encoding",
		Long: `Prints the padded grid the cipher reads from, one row per line.
Padding cells are highlighted on a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			m, err := matrix.New(a.cfg.Width, a.cfg.Height, text, a.cfg.MatrixOptions()...)
			if err != nil {
				a.logger.Error("Failed to build grid", zap.Error(err))
				return err
			}
			a.logger.Debug("Grid built",
				zap.Int("sourceRunes", m.Len()),
				zap.Int("cells", m.Width()*m.Height()),
			)
			return a.printer(cmd.OutOrStdout()).Grid(m)
		},
	}
}
