package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glint-bench",
		Short: "Exercise the glint reactive engine with synthetic workloads",
		Long: `glint-bench runs synthetic reactive-graph workloads against the
glint engine and reports wall time and engine counters per scenario.

Scenarios cover the shapes that matter in practice: deep memo chains,
diamond dependencies, wide signal fan-out and batched write storms.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		listCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("glint-bench %s (%s)\n", version, commit)
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range scenarios {
				fmt.Printf("%-10s %s\n", s.Name, s.Description)
			}
		},
	}
}
