package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twelveweeks/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "twy",
	Short:         "twelveweeks — local-first 12-week-year scoreboard",
	Long:          "twelveweeks is a local-first CLI/TUI tracker for the 12-week year: goals, daily task tiers, and weekly reflections.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newTodayCmd(),
		newGoalsCmd(),
		newWeekCmd(),
		newEpochCmd(),
		newBoardCmd(),
		newExportCmd(),
		newImportCmd(),
		newClearCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
