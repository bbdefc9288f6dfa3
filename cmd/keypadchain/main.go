// Package main is the keypadchain command: it reads terminal-keypad codes
// and prints the fewest human keystrokes needed through a chain of
// directional-keypad robots, scored per code.
//
// Usage:
//
//	keypadchain solve codes.txt               # depths from config (2 and 25)
//	keypadchain solve --depth 3 --per-code -  # read stdin
//	keypadchain validate --max-depth 3 codes.txt
//	keypadchain explain --depth 2 029A
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/keypadchain/internal/config"
)

var (
	// logger is built in PersistentPreRunE and shared by every subcommand.
	logger *zap.Logger
	// cfg is loaded in PersistentPreRunE.
	cfg *config.Config

	configPath string
	verbose    bool

	// buildLogger is replaced in tests to observe log output.
	buildLogger = func(level zapcore.Level) (*zap.Logger, error) {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		return zc.Build()
	}
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keypadchain",
		Short: "Shortest keystroke sequences through chains of keypad robots",
		Long: `keypadchain computes how many keys a human must press on a directional
keypad so that a chain of robots, each typing on the keypad of the next,
makes a terminal keypad type every code in the input. The result per depth is
the sum over codes of (keystrokes × numeric value of the code).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			level, err := zapcore.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %w", err)
			}
			if verbose {
				level = zapcore.DebugLevel
			}
			logger, err = buildLogger(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to YAML config")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(), newValidateCmd(), newExplainCmd())

	return root
}

// openInput returns stdin for no argument or "-", otherwise the named file.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}
