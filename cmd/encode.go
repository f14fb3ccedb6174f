// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/routecipher/cipher"
	"github.com/katalvlaran/routecipher/internal/render"
)

func newEncodeCmd(a *app) *cobra.Command {
	var trace bool

	c := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text along the spiral route",
		Long: `Encodes the arguments joined by spaces, or standard input when no
arguments are given.
Example) routecipher encode -W 9 -H 3 "WE ARE DISCOVERED. FLEE AT ONCE"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runEncode(a, cmd.OutOrStdout(), text, trace)
		},
	}
	c.Flags().BoolVar(&trace, "trace", false, "print every step of the route before the result")

	return c
}

func runEncode(a *app, out io.Writer, text string, trace bool) error {
	c := cipher.New(a.cfg.Width, a.cfg.Height, a.cfg.MatrixOptions()...)

	steps, err := c.Trace(text)
	if err != nil {
		a.logger.Error("Failed to encode", zap.Error(err))
		return err
	}

	var sb strings.Builder
	for _, s := range steps {
		a.logger.Debug("Route step",
			zap.Int("x", s.X),
			zap.Int("y", s.Y),
			zap.String("char", string(s.Char)),
		)
		sb.WriteRune(s.Char)
	}

	p := a.printer(out)
	if trace {
		if err := p.Trace(steps); err != nil {
			return err
		}
	}
	a.logger.Info("Encoded",
		zap.Int("width", c.Width()),
		zap.Int("height", c.Height()),
		zap.Int("cells", len(steps)),
	)

	return p.Result(a.cfg.Format, render.Result{
		Width:      c.Width(),
		Height:     c.Height(),
		Plaintext:  text,
		Ciphertext: sb.String(),
	})
}

// readText joins args, or reads all of in when args is empty.
func readText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}
