// Command scansion estimates the metrical stress pattern of English poetry
// from the configured pronunciation corpus and records confirmed scansions
// back into it.
//
// Poems are read from positional arguments, from --file, or from stdin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const appName = "scansion"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Scan English poetry for metrical stress",
		Long: `Scansion marks each syllable of a poem stressed (/) or unstressed (u)
using a crowd-sourced corpus of per-word stress observations.

Lines of the output line up with lines of the poem; words are separated by
a single space and undecided syllables are marked '?'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML); defaults to $CONFIG_PATH or ./config.yaml")

	cmd.AddCommand(
		scanCmd(&configPath),
		scoreCmd(&configPath),
		syllablesCmd(&configPath),
		recordCmd(&configPath),
		gradeCmd(&configPath),
		algorithmsCmd(&configPath),
		migrateCmd(&configPath),
		versionCmd(),
	)

	return cmd
}
