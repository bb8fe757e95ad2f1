package main

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/cfront/internal/config"
	"github.com/you-not-fish/cfront/internal/logs"
	"github.com/you-not-fish/cfront/internal/syntax"
)

func (a *app) parseCmd() *cobra.Command {
	var (
		input  string
		format string
	)
	cmd := &cobra.Command{
		Use:   "parse [-i] file",
		Short: "Print the parse tree of a source file",
		Long: `Scan and parse a source file and print its parse tree.

Formats:
  text   indented tree, one node per line (default)
  json   nested objects with node, pos, text and children
  yaml   the same fields as json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, err := inputFile(input, args)
			if err != nil {
				return a.usage(err)
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			if !slices.Contains(config.Formats, format) {
				return a.usage(fmt.Errorf("unknown format %q: want one of %s", format, strings.Join(config.Formats, ", ")))
			}
			return a.runParse(cmd.Context(), filename, format)
		},
	}
	addInputFlag(cmd, &input)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

// runParse scans and parses filename and prints the tree in format.
func (a *app) runParse(ctx context.Context, filename, format string) error {
	src, err := a.readInput(ctx, filename)
	if err != nil {
		return err
	}

	items, err := syntax.LexBytes(filename, src)
	if err != nil {
		return a.fail(exitSyntax, err, src)
	}
	a.logger.DebugContext(logs.WithPhase(ctx, "lex"), "scanned", "tokens", len(items)-1)

	fn, err := syntax.Parse(items)
	if err != nil {
		return a.fail(exitSyntax, err, src)
	}
	a.logger.DebugContext(logs.WithPhase(ctx, "parse"), "parsed",
		"function", fn.Name.Lit,
		"statements", len(fn.Body.Stmts),
		"nodes", syntax.Count(fn),
	)

	var buf bytes.Buffer
	switch format {
	case "json":
		err = syntax.FprintJSON(&buf, fn)
	case "yaml":
		err = syntax.FprintYAML(&buf, fn)
	default:
		err = syntax.Fprint(&buf, fn)
	}
	if err != nil {
		return a.fail(exitIO, err, nil)
	}
	a.logger.DebugContext(logs.WithPhase(ctx, "print"), "printed", "format", format, "bytes", buf.Len())

	if _, err := a.stdout.Write(buf.Bytes()); err != nil {
		return a.fail(exitIO, err, nil)
	}
	return nil
}
