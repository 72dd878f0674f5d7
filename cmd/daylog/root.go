package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; the work happens in its subcommands.
var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "Exercise and check daylog log files",
	Long: `daylog drives the daylog logger from many goroutines and checks
that the resulting daily log files are well formed.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newStressCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "daylog version %s\n" .Version}}`)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of daylog",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "daylog version %s\n", rootCmd.Version)
		},
	}
}
