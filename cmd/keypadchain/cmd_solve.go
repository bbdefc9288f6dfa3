package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/oracle"
	"github.com/katalvlaran/keypadchain/sequencer"
)

func newSolveCmd() *cobra.Command {
	var (
		depths  []int
		perCode bool
		check   bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Score every code at each configured chain depth",
		Long: `Reads one code per line (digits followed by A) from file or stdin and prints
"depth=<n> total=<score>" for each depth. Depths come from --depth, or from
the config file when the flag is not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth") {
				depths = cfg.Depths
			}
			return runSolve(cmd, args, depths, perCode, check)
		},
	}
	cmd.Flags().IntSliceVarP(&depths, "depth", "d", nil, "chain depths to solve (repeatable)")
	cmd.Flags().BoolVar(&perCode, "per-code", false, "print length and complexity per code")
	cmd.Flags().BoolVar(&check, "check", false, "cross-check shallow depths with the explicit simulator")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, depths []int, perCode, check bool) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	codes, err := sequencer.ParseCodes(in)
	if err != nil {
		return err
	}
	logger.Info("codes parsed", zap.Int("count", len(codes)), zap.Ints("depths", depths))

	out := cmd.OutOrStdout()
	for _, depth := range depths {
		s, err := sequencer.NewScorer(depth, oracle.WithOnMemo(memoLogger(depth)))
		if err != nil {
			return err
		}
		rep, err := s.Score(codes)
		if err != nil {
			return fmt.Errorf("depth %d: %w", depth, err)
		}
		logger.Info("depth solved",
			zap.Int("depth", depth),
			zap.Int64("total", rep.Total),
			zap.Int("cache_entries", s.Oracle().CacheSize()),
		)

		if check {
			if depth > cfg.CrossCheck.MaxDepth {
				logger.Info("cross-check skipped",
					zap.Int("depth", depth),
					zap.Int("max_depth", cfg.CrossCheck.MaxDepth),
				)
			} else if err := crossCheck(codes, depth, rep); err != nil {
				return err
			}
		}

		if perCode {
			for _, e := range rep.Entries {
				fmt.Fprintf(out, "depth=%d code=%s length=%d value=%d complexity=%d\n",
					depth, e.Code.Keys, e.Length, e.Code.Value, e.Complexity)
			}
		}
		fmt.Fprintf(out, "depth=%d total=%d\n", depth, rep.Total)
	}

	return nil
}

// memoLogger returns an oracle hook reporting cache fills at debug level.
func memoLogger(depth int) func(layer int, start, end keypad.Position, cost int64) {
	if !logger.Core().Enabled(zap.DebugLevel) {
		return nil
	}
	return func(layer int, start, end keypad.Position, cost int64) {
		logger.Debug("memo",
			zap.Int("depth", depth),
			zap.Int("layer", layer),
			zap.Stringer("start", start),
			zap.Stringer("end", end),
			zap.Int64("cost", cost),
		)
	}
}
