package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/oracle"
	"github.com/katalvlaran/keypadchain/sequencer"
)

func newExplainCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "explain CODE",
		Short: "Print one shortest human key sequence for a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args[0], depth)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 2, "chain depth")

	return cmd
}

func runExplain(cmd *cobra.Command, raw string, depth int) error {
	code, err := sequencer.ParseCode(raw)
	if err != nil {
		return err
	}
	o, err := oracle.New(depth, oracle.WithMaxExpand(cfg.Explain.MaxLength))
	if err != nil {
		return err
	}
	top := o.TopLayer()
	term := o.Layout(top)
	stops, err := sequencer.Keys(code, term)
	if err != nil {
		return err
	}

	var total int64
	prev := term.Activate()
	for _, next := range stops {
		n, err := o.Cost(top, prev, next)
		if err != nil {
			return fmt.Errorf("depth %d: %w", depth, err)
		}
		if total += n; total > cfg.Explain.MaxLength {
			return fmt.Errorf("depth %d: %w: %s needs more than %d keys",
				depth, oracle.ErrExpandTooLong, code.Keys, cfg.Explain.MaxLength)
		}
		prev = next
	}

	var b strings.Builder
	prev = term.Activate()
	for _, next := range stops {
		part, err := o.Expand(top, prev, next)
		if err != nil {
			return fmt.Errorf("depth %d: %w", depth, err)
		}
		b.WriteString(part)
		prev = next
	}
	logger.Debug("expanded", zap.String("code", code.Keys), zap.Int("depth", depth), zap.Int("length", b.Len()))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d keys)\n", code.Keys, b.String(), b.Len())

	return nil
}
