package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"atelier/internal/artist"
	"atelier/internal/config"
	"atelier/internal/store"
)

func newAllCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "List every persisted artist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				artists, err := st.All(cmd.Context())
				if err != nil {
					return err
				}
				if len(artists) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No artists in the store")
					return nil
				}

				if plain || !stdoutIsTerminal() {
					for _, a := range artists {
						fmt.Fprintln(cmd.OutOrStdout(), artist.Summary(a))
					}
					return nil
				}

				headers := []string{"ID", "Name", "Born", "Died", "Nationality", "Genre", "Paintings"}
				rows := make([][]string, 0, len(artists))
				for _, a := range artists {
					rows = append(rows, []string{
						a.ID.String(), a.Name, a.Born, a.Died, a.Nationality, a.Genre,
						strconv.Itoa(len(a.Paintings)),
					})
				}
				aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignRight}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Force line-oriented output")
	return cmd
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
