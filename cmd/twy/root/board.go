package root

import (
	"github.com/spf13/cobra"

	"twelveweeks/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive day board (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := resolveDate(date, cfg)
			if err != nil {
				return err
			}
			return tui.RunDayBoard(svc, d, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), default today")

	return cmd
}
