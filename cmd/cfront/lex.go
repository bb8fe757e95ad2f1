package main

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/cfront/internal/logs"
	"github.com/you-not-fish/cfront/internal/syntax"
)

func (a *app) lexCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "lex [-i] file",
		Short: "Print the token table of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, err := inputFile(input, args)
			if err != nil {
				return a.usage(err)
			}
			return a.runLex(cmd.Context(), filename)
		},
	}
	addInputFlag(cmd, &input)
	return cmd
}

// runLex scans filename and prints its token table.
func (a *app) runLex(ctx context.Context, filename string) error {
	src, err := a.readInput(ctx, filename)
	if err != nil {
		return err
	}

	items, err := syntax.LexBytes(filename, src)
	if err != nil {
		return a.fail(exitSyntax, err, src)
	}
	a.logger.DebugContext(logs.WithPhase(ctx, "lex"), "scanned", "tokens", len(items)-1)

	// Nothing reaches stdout unless the whole table was built.
	var buf bytes.Buffer
	if err := syntax.FprintTokens(&buf, items); err != nil {
		return a.fail(exitIO, err, nil)
	}
	if _, err := a.stdout.Write(buf.Bytes()); err != nil {
		return a.fail(exitIO, err, nil)
	}
	return nil
}
