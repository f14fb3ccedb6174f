// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/routecipher/internal/config"
	"github.com/katalvlaran/routecipher/internal/render"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	noColor bool

	// flag holders; applied over cfg only when set on the command line
	width, height   int
	padding, format string
	logLevel        string
	keepAll         bool
	injectedLogger  bool
}

// NewRootCmd builds the command tree. A non-nil logger is used as-is instead
// of building one from --log-level.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger, injectedLogger: logger != nil}

	root := &cobra.Command{
		Use:   "routecipher",
		Short: "routecipher - encode text with a spiral route cipher",
		Long: `Lays plaintext into a width x height grid row by row and reads it back
along an inward spiral starting at the top-right corner heading down.
Defaults come from ROUTECIPHER_* environment variables; flags override them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&a.width, "width", "W", 0, "grid width in columns (env ROUTECIPHER_WIDTH, default 9)")
	pf.IntVarP(&a.height, "height", "H", 0, "grid height in rows (env ROUTECIPHER_HEIGHT, default 3)")
	pf.StringVar(&a.padding, "padding", "", "padding character for short input (env ROUTECIPHER_PADDING, default X)")
	pf.BoolVar(&a.keepAll, "keep-all", false, "keep non-letters instead of stripping them")
	pf.StringVarP(&a.format, "format", "f", "", "output format: text, json or yaml")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newEncodeCmd(a))
	root.AddCommand(newGridCmd(a))
	root.AddCommand(newOrderCmd(a))

	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd(nil).Execute()
}

// setup resolves env defaults, applies explicit flags, validates, and builds the logger.
// Help and shell completion never read the environment, so a broken
// ROUTECIPHER_* variable cannot hide usage text.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if isBuiltin(cmd) {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = a.width
	}
	if flags.Changed("height") {
		cfg.Height = a.height
	}
	if flags.Changed("padding") {
		cfg.Padding = a.padding
	}
	if flags.Changed("keep-all") {
		cfg.KeepAll = a.keepAll
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if !a.injectedLogger {
		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		a.logger = logger
	}
	a.logger.Debug("Configuration resolved",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("padding", cfg.Padding),
		zap.Bool("keepAll", cfg.KeepAll),
		zap.String("format", cfg.Format),
	)

	return nil
}

// isBuiltin reports whether cmd is, or sits under, one of cobra's generated
// help or completion commands.
func isBuiltin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}

	return false
}

// printer writes to the command's output, coloured only on a terminal.
func (a *app) printer(w io.Writer) *render.Printer {
	return render.NewPrinter(w, !a.noColor && !color.NoColor && w == os.Stdout)
}

// newLogger builds a production logger, or a development one at debug level.
// Logs go to stderr so they never mix with ciphertext on stdout.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
