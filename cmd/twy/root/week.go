package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"twelveweeks/internal/engine"
	"twelveweeks/internal/ui"
)

func newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [number]",
		Short: "Show a week's range, live score and reflection",
		Long: `Show one week of the cycle: its date range, the score computed live
from the daily entries in that range, and the saved reflection if any.

Without a number, shows the current week (derived from how many distinct
days have been logged).`,
		Args: weekNumberArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.DailyEntries()
			if err != nil {
				return err
			}
			weekNumber := engine.CurrentWeekNumber(entries)
			if len(args) == 1 {
				weekNumber, _ = strconv.Atoi(args[0])
			}

			baseMonday, err := svc.BaseMonday()
			if err != nil {
				return err
			}
			start, end, err := engine.DateRangeForWeek(weekNumber, baseMonday)
			if err != nil {
				return err
			}
			score, ok, err := engine.ScoreForCurrentWeek(entries, weekNumber, baseMonday)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, fmt.Sprintf("Week %d", weekNumber)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Range", start+" → "+end))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Score", ui.ScoreText(score, ok)))

			summary, err := svc.SummaryForWeek(weekNumber)
			if err != nil {
				return err
			}
			if summary == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no reflection saved — twy week save "+strconv.Itoa(weekNumber)+" <text>)"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Reflection", summary.Reflection))
			return nil
		},
	}

	cmd.AddCommand(newWeekSaveCmd())

	return cmd
}

func newWeekSaveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "save <number> [reflection...]",
		Short: "Save a week's reflection (snapshots the live score)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("week number is required")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return errors.New("week number must be a positive integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			weekNumber, _ := strconv.Atoi(args[0])
			reflection := strings.Join(args[1:], " ")

			// An empty reflection over a scored week is probably a slip:
			// ask before finalizing, as the original scoreboard did.
			if strings.TrimSpace(reflection) == "" && !yes {
				entries, err := svc.DailyEntries()
				if err != nil {
					return err
				}
				baseMonday, err := svc.BaseMonday()
				if err != nil {
					return err
				}
				score, err := engine.ScoreForWeek(weekNumber, entries, baseMonday)
				if err != nil {
					return err
				}
				if score > 0 && !confirm(cmd, fmt.Sprintf("Week %d has tasks but your reflection is empty. Save anyway?", weekNumber)) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing saved."))
					return nil
				}
			}

			summary, err := svc.SaveWeeklySummary(weekNumber, reflection)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s week %d %s\n",
				ui.Good.Render(ui.IconDone+" Saved"), summary.WeekNumber,
				ui.Muted.Render(fmt.Sprintf("(score snapshot %d%%)", summary.Score)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the empty-reflection prompt")

	return cmd
}

func weekNumberArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("at most one week number")
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errors.New("week number must be a positive integer")
		}
	}
	return nil
}
