package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atelier/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration",
	}
	cmd.AddCommand(newConfigShowCommand(ctx))
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "data_dir      = %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(out, "input_dir     = %s\n", cfg.Paths.InputDir)
			fmt.Fprintf(out, "db_file       = %s\n", cfg.Paths.DBFile)
			fmt.Fprintf(out, "catalog_file  = %s\n", cfg.Paths.CatalogFile)
			fmt.Fprintf(out, "store         = %s\n", cfg.DatabasePath())
			fmt.Fprintf(out, "image_dir     = %s\n", cfg.ImageDir())
			fmt.Fprintf(out, "crop_bound    = %d\n", cfg.Ingest.CropBound)
			fmt.Fprintf(out, "thumb_bound   = %d\n", cfg.Ingest.ThumbnailBound)
			fmt.Fprintf(out, "jpeg_quality  = %d\n", cfg.Ingest.JPEGQuality)
			fmt.Fprintf(out, "log_format    = %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "log_level     = %s\n", cfg.Logging.Level)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathFlag
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			if err := config.WriteSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&pathFlag, "path", "", "Destination path for the sample config")
	return cmd
}
