package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twelveweeks/internal/backup"
	"twelveweeks/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := backup.Export(store)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Exported to"), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", backup.DefaultFileName, "Output file")

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import data from a JSON export",
		Long: `Import a previously exported bundle. Only the top-level keys present
in the file are applied — a file with only "goals" leaves daily entries
and weekly summaries untouched. Each present collection is overwritten
raw; a malformed file aborts the whole import with nothing changed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			store, _, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := backup.Import(store, data)
			if err != nil {
				return err
			}

			applied := []struct {
				name string
				done bool
			}{
				{"goals", res.Goals},
				{"dailyEntries", res.DailyEntries},
				{"weeklySummaries", res.WeeklySummaries},
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Import complete"))
			for _, a := range applied {
				state := ui.Muted.Render("skipped (not in file)")
				if a.done {
					state = ui.Good.Render("replaced")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s\n", a.name, state)
			}
			return nil
		},
	}

	return cmd
}

func newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL data (goals, entries, summaries, epoch)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			if !yes && !confirm(cmd, "Are you sure you want to DELETE ALL your data?") {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing cleared."))
				return nil
			}
			if err := svc.ClearAll(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconTrash+" All data cleared."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
