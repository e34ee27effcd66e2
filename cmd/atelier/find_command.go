package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"atelier/internal/artist"
	"atelier/internal/config"
	"atelier/internal/store"
)

func newFindByIDCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find-by-id <id>",
		Short: "Look one artist up by its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("parse identifier %q: %w", args[0], err)
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				a, err := st.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), artist.Describe(a))
				return nil
			})
		},
	}
	return cmd
}
