// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/solverkit/exprcore/expr"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"zombiezen.com/go/bass/sigterm"
)

func main() {
	rootCommand := &cobra.Command{
		Use:   "exprc [options] [FILE]",
		Short: "Build and inspect algebraic expression models from a JSONC document",

		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	rootCommand.AddCommand(
		newPrintCommand(),
		newEvalCommand(),
		newNLCommand(),
		newRepnCommand(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), sigterm.Signals()...)
	err := rootCommand.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "exprc: %v\n", err)
		os.Exit(1)
	}
}

func newPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print [FILE]",
		Short: "Pretty-print each expression in a model document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := loadModel(args)
			if err != nil {
				return err
			}
			for i, n := range exprs {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, n.String())
			}
			return nil
		},
	}
}

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [FILE]",
		Short: "Evaluate each expression in a model document at its leaves' current values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := loadModel(args)
			if err != nil {
				return err
			}
			for i, n := range exprs {
				e, ok := n.(*expr.Expression)
				if !ok {
					var v float64
					switch leaf := n.(type) {
					case *expr.Variable:
						v = leaf.Value
					case *expr.Parameter:
						v = leaf.Value
					case *expr.Constant:
						v = leaf.Value
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%d: %g\n", i, v)
					continue
				}
				v, err := e.Evaluate()
				if err != nil {
					return fmt.Errorf("expression %d: %w", i, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %g\n", i, v)
			}
			return nil
		},
	}
}

func newNLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nl [FILE]",
		Short: "Emit each expression's AMPL-NL prefix opcode stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := loadModel(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, n := range exprs {
				fmt.Fprintf(out, "# expression %d\n", i)
				if err := expr.WriteNLString(out, n); err != nil {
					return fmt.Errorf("expression %d: %w", i, err)
				}
			}
			return nil
		},
	}
}

func newRepnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repn [FILE]",
		Short: "Decompose each expression into its constant/linear/quadratic/nonlinear parts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := loadModel(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, n := range exprs {
				r, err := expr.GenerateRepn(n)
				if err != nil {
					return fmt.Errorf("expression %d: %w", i, err)
				}
				fmt.Fprintf(out, "%d: constant=%s linear=%s quadratic=%s nonlinear=%s\n",
					i, r.Constant, r.Linear, r.Quadratic, r.Nonlinear)
			}
			return nil
		},
	}
}

func loadModel(args []string) ([]expr.Node, error) {
	input, err := makeInput(args)
	if err != nil {
		return nil, err
	}
	defer input.Close()

	if isTerminal(input) {
		fmt.Fprintln(os.Stderr, "Reading from terminal (send EOF to finish)...")
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	doc, err := parseModelDoc(raw)
	if err != nil {
		return nil, err
	}
	env := expr.NewEnvironment()
	return buildModel(env, doc)
}

func makeInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return nopReadCloser{os.Stdin}, nil
	}
	return os.Open(args[0])
}

func isTerminal(r io.Reader) bool {
	for {
		switch rt := r.(type) {
		case *os.File:
			return term.IsTerminal(int(rt.Fd()))
		case nopReadCloser:
			r = rt.Reader
		default:
			return false
		}
	}
}

type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }
