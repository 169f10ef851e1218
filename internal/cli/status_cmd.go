package cli

import (
	"fmt"

	"github.com/alexanderramin/roadtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show progress of both tracks and the combined figure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.Roadmaps.LoadAll(cmd.Context())
			if err != nil {
				return loadFailure(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(board))
			return nil
		},
	}
}

func newTrendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show completed tasks per day over the last week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trend, err := app.Trends.Weekly(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrend(trend))
			return nil
		},
	}
}
