package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"twelveweeks/internal/ui"
)

func newEpochCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epoch",
		Short: "Show or set the base Monday (week 1 start)",
		Long: `The base Monday anchors every week's date range. Changing it
retroactively reclassifies which week each daily entry belongs to.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			baseMonday, err := svc.BaseMonday()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Base Monday", baseMonday))
			return nil
		},
	}

	cmd.AddCommand(newEpochSetCmd())

	return cmd
}

func newEpochSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <date>",
		Short: "Set the base Monday (non-Mondays snap to the nearest Monday)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("date is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			stored, snapped, err := svc.SetBaseMonday(args[0])
			if err != nil {
				return err
			}
			if snapped {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s is not a Monday; using nearest Monday %s\n",
					ui.Warn.Render(ui.IconWarn), args[0], ui.Key.Render(stored))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Base Monday set to"), stored)
			return nil
		},
	}
}
