package main

import (
	"github.com/spf13/cobra"

	"zupos/util"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "config [output.yaml]",
		Short: "Print the effective config, defaults included",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := "-"
			if len(args) > 0 {
				out = args[0]
			}
			return util.WriteConfig(cfg, out, fileMode)
		},
	})
}
