package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = "development"
	BuildDate = "unknown"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "cfront version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build Date: %s\n", BuildDate)
			fmt.Fprintf(a.stdout, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(a.stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
