package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dataDirFlag string
	var dbFlag string

	ctx := newCommandContext(&configFlag, &dataDirFlag, &dbFlag)

	rootCmd := &cobra.Command{
		Use:           "atelier",
		Short:         "Artist catalog ingestion CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding the store file and image tree")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Store file name inside the data directory")

	rootCmd.AddCommand(newIngestCommand(ctx))
	rootCmd.AddCommand(newAllCommand(ctx))
	rootCmd.AddCommand(newFindByIDCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
