package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/cfront/internal/logs"
)

var errNoInput = errors.New("no input file")

// addInputFlag registers -i/--input on cmd.
func addInputFlag(cmd *cobra.Command, input *string) {
	cmd.Flags().StringVarP(input, "input", "i", "", "input file (or give it as the argument)")
}

// inputFile picks the input from the -i flag or the single positional
// argument.
func inputFile(flag string, args []string) (string, error) {
	switch {
	case flag != "" && len(args) > 0:
		return "", fmt.Errorf("input given twice: -i %s and %s", flag, args[0])
	case flag != "":
		return flag, nil
	case len(args) > 0:
		return args[0], nil
	}
	return "", errNoInput
}

// readInput reads the whole input file.
func (a *app) readInput(ctx context.Context, filename string) ([]byte, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, a.fail(exitIO, fmt.Errorf("reading %s: %w", filename, err), nil)
	}
	a.logger.DebugContext(logs.WithPhase(ctx, "read"), "read input", "file", filename, "bytes", len(src))
	return src, nil
}
