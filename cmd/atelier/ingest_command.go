package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"atelier/internal/catalog"
	"atelier/internal/config"
	"atelier/internal/ingest"
	"atelier/internal/store"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var csvFlag string

	cmd := &cobra.Command{
		Use:   "parse-csv [input-dir]",
		Short: "Ingest the artist catalog and derive image variants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
					expanded, err := config.ExpandPath(strings.TrimSpace(args[0]))
					if err != nil {
						return err
					}
					cfg.Paths.InputDir = expanded
				}
				if strings.TrimSpace(csvFlag) != "" {
					cfg.Paths.CatalogFile = strings.TrimSpace(csvFlag)
				}
				if err := cfg.Validate(); err != nil {
					return err
				}

				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}

				catalogPath := cfg.CatalogPath()
				fmt.Fprintf(cmd.OutOrStdout(), "Reading from %s\n", catalogPath)
				records, err := catalog.Read(catalogPath)
				if err != nil {
					return err
				}

				runner := ingest.NewRunner(cfg, st, logger)
				artists, err := runner.Ingest(cmd.Context(), records)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d artists into %s\n", len(artists), st.Path())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&csvFlag, "csv", "", "Catalog file name inside the input directory")
	return cmd
}
