package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/sequencer"
	"github.com/katalvlaran/keypadchain/simulate"
)

// errMismatch reports a disagreement between the oracle and the simulator.
var errMismatch = errors.New("oracle and simulator disagree")

func newValidateCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Compare oracle lengths with explicit search at shallow depths",
		Long: `Runs the breadth-first simulator for every depth from 0 to --max-depth and
checks that it finds the same per-code lengths as the cost oracle.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-depth") {
				maxDepth = cfg.CrossCheck.MaxDepth
			}
			return runValidate(cmd, args, maxDepth)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 2, "deepest chain to simulate")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, maxDepth int) error {
	if maxDepth < 0 {
		return fmt.Errorf("max-depth %d is negative", maxDepth)
	}
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	codes, err := sequencer.ParseCodes(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for depth := 0; depth <= maxDepth; depth++ {
		s, err := sequencer.NewScorer(depth)
		if err != nil {
			return err
		}
		rep, err := s.Score(codes)
		if err != nil {
			return fmt.Errorf("depth %d: %w", depth, err)
		}
		if err := crossCheck(codes, depth, rep); err != nil {
			return err
		}
		fmt.Fprintf(out, "depth=%d ok codes=%d total=%d\n", depth, len(codes), rep.Total)
	}

	return nil
}

// crossCheck runs the simulator at depth and compares its lengths with rep.
func crossCheck(codes []sequencer.Code, depth int, rep *sequencer.Report) error {
	keys := make([]string, len(codes))
	for i, c := range codes {
		keys[i] = c.Keys
	}
	res, err := simulate.Search(keys, depth,
		simulate.WithMaxStates(cfg.CrossCheck.MaxStates),
		simulate.WithOnFound(func(code string, presses int) {
			logger.Debug("simulator found code",
				zap.Int("depth", depth),
				zap.String("code", code),
				zap.Int("presses", presses),
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("depth %d: %w", depth, err)
	}
	logger.Info("simulator finished", zap.Int("depth", depth), zap.Int("states", res.Explored))

	for _, e := range rep.Entries {
		got, ok := res.Lengths[e.Code.Keys]
		if !ok || int64(got) != e.Length {
			return fmt.Errorf("%w: depth %d code %s: oracle %d, simulator %d",
				errMismatch, depth, e.Code.Keys, e.Length, got)
		}
	}

	return nil
}
