package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/cfront/internal/config"
	"github.com/you-not-fish/cfront/internal/diag"
	"github.com/you-not-fish/cfront/internal/logs"
)

// Exit codes
const (
	exitOK     = 0
	exitSyntax = 1 // lexical or parse error
	exitUsage  = 2 // bad arguments, flags or config
	exitIO     = 3 // input could not be read
)

// exitError carries the exit code of a failure that has already been
// reported on stderr.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// app holds the state of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// persistent flags
	cfgFile  string
	logLevel string
	noColor  bool

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	diag     *diag.Printer
}

// run executes the command line args and returns the exit code.
func run(args []string) int {
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logs.Discard(),
	}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(context.Background())
	if a.closeLog != nil {
		_ = a.closeLog()
	}
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// cobra rejected the command line
	printError(a.stderr, err)
	fmt.Fprintf(a.stderr, "Run '%s --help' for usage.\n", root.CommandPath())
	return exitUsage
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cfront",
		Short: "Lexer and parser for a small C-like language",
		Long: `cfront scans a source file into tokens and parses it into a parse tree.

The input holds one function definition:

  int foo(float x, int y){y=x+10;x=y/2.0;y=(int)x;return x;}

Commands:
  lex      print the token table
  parse    print the parse tree (text, json or yaml)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .cue; default $"+config.EnvVar+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(a.lexCmd(), a.parseCmd(), a.versionCmd())
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and diagnostics printer.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Path(a.cfgFile))
	if err != nil {
		return a.usage(err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return a.usage(err)
	}
	a.cfg = cfg

	level, err := logs.ParseLevel(cfg.Log.Level)
	if err != nil {
		return a.usage(err)
	}
	logger, closeLog, err := logs.New(a.stderr, logs.Options{
		Level:   level,
		File:    cfg.Log.File,
		Journal: cfg.Log.Journal,
	})
	if err != nil {
		return a.usage(err)
	}
	a.logger = logger.With("cmd", cmd.Name())
	a.closeLog = closeLog
	a.diag = diag.NewPrinter(a.stderr, cfg.Output.Color)

	a.logger.Debug("configured",
		"config", config.Path(a.cfgFile),
		"level", cfg.Log.Level,
		"color", cfg.Output.Color,
	)
	return nil
}

// usage reports err and returns the usage exit code.
func (a *app) usage(err error) error {
	printError(a.stderr, err)
	return &exitError{code: exitUsage, err: err}
}

// fail reports err with the source it refers to and returns code.
func (a *app) fail(code int, err error, src []byte) error {
	if a.diag == nil {
		printError(a.stderr, err)
	} else {
		_ = a.diag.Print(err, src)
	}
	return &exitError{code: code, err: err}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
