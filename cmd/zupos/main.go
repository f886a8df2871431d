// Command zupos runs the store definition screen in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	fileMode = 0644
)

var (
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "zupos",
	Short: "Browse and edit store definitions",
	Long: `zupos shows store definitions in a pageable grid with quick search,
advanced filters and a form drawer for creating and editing stores.

A sample config is written on first run and can be edited afterwards.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "zupos.yaml", "Config file, written from the sample when missing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
