package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"munros/internal/ui/views"
)

func listCommand(settings *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "list [search...]",
		Short: "Print the Munros matching a search and exit",
		Long: "Fetch the listing once and print it as a table. Arguments are joined with " +
			"spaces to form the search text; without arguments every Munro is listed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, closer, client, err := settings.setup(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			search := strings.Join(args, " ")
			munros, err := client.List(cmd.Context(), search)
			if err != nil {
				logger.WithError(err).WithField("search", search).Error("Listing fetch failed")
				return fmt.Errorf("list munros: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), views.RenderPlainTable(munros, views.NewStyles()))
			return nil
		},
	}
}
