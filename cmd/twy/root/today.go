package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"twelveweeks/internal/engine"
	"twelveweeks/internal/storage"
	"twelveweeks/internal/ui"
)

func newTodayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show and edit a day's tasks",
		Long: `Show the task list for a date (today by default).

The first visit to a date seeds its task list from the most recent logged
day: task names carry forward, tiers reset to S and notes start empty.`,
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
			entry, err := svc.EntryForDate(d)
			if err != nil {
				return err
			}
			printEntry(cmd, entry)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), default today")

	cmd.AddCommand(
		newTodayAddCmd(&date),
		newTodayTierCmd(&date),
		newTodayNotesCmd(&date),
		newTodayRenameCmd(&date),
		newTodayRmCmd(&date),
	)

	return cmd
}

func newTodayAddCmd(date *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task (defaults to tier S)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("task name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := resolveDate(*date, cfg)
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			entry, err := svc.AddTask(d, name)
			if err != nil {
				return err
			}
			// A blank name is a silent no-op; only report real additions.
			if strings.TrimSpace(name) != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Good.Render(ui.IconPlus+" Added"), strings.TrimSpace(name), ui.Muted.Render("(tier S)"))
			}
			printEntry(cmd, entry)
			return nil
		},
	}
}

func newTodayTierCmd(date *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tier <index> <S|A|B|C>",
		Short: "Set a task's tier",
		Args:  taskIndexArgs(2, "index and tier are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := resolveDate(*date, cfg)
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[0])
			tier := engine.Tier(strings.ToUpper(strings.TrimSpace(args[1])))
			if !tier.IsValid() {
				return fmt.Errorf("invalid tier %q (want S, A, B or C)", args[1])
			}
			entry, err := svc.SetTaskTier(d, index, tier)
			if err != nil {
				return err
			}
			printEntry(cmd, entry)
			return nil
		},
	}
}

func newTodayNotesCmd(date *string) *cobra.Command {
	return &cobra.Command{
		Use:   "notes <index> [text...]",
		Short: "Set a task's notes (empty text clears them)",
		Args:  taskIndexArgs(1, "index is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := resolveDate(*date, cfg)
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[0])
			entry, err := svc.SetTaskNotes(d, index, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printEntry(cmd, entry)
			return nil
		},
	}
}

func newTodayRenameCmd(date *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <index> <name>",
		Short: "Rename a task (blank names are rejected)",
		Args:  taskIndexArgs(2, "index and new name are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := resolveDate(*date, cfg)
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[0])
			entry, err := svc.RenameTask(d, index, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printEntry(cmd, entry)
			return nil
		},
	}
}

func newTodayRmCmd(date *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Delete a task",
		Args:  taskIndexArgs(1, "index is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := resolveDate(*date, cfg)
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[0])

			current, err := svc.EntryForDate(d)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(current.Tasks) {
				return fmt.Errorf("task %d not found on %s", index, d)
			}
			name := current.Tasks[index].TaskID
			if !yes && !confirm(cmd, fmt.Sprintf("Delete task %q on %s?", name, d)) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing deleted."))
				return nil
			}

			entry, err := svc.DeleteTask(d, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconTrash+" Deleted"), name)
			printEntry(cmd, entry)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func taskIndexArgs(min int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min {
			return errors.New(msg)
		}
		if _, err := strconv.Atoi(args[0]); err != nil {
			return errors.New("index must be an integer")
		}
		return nil
	}
}

func printEntry(cmd *cobra.Command, entry storage.DailyEntry) {
	score, ok := engine.AggregateScore(entry.Tasks)
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n",
		ui.Heading(ui.IconCalendar, entry.Date),
		ui.Muted.Render("day score:"), ui.ScoreText(score, ok))
	if len(entry.Tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks yet)"))
		return
	}
	for i, task := range entry.Tasks {
		line := fmt.Sprintf("%2d. [%s] %s", i, ui.TierBadge(task.Tier), task.TaskID)
		if task.Notes != "" {
			line += "  " + ui.Muted.Render(task.Notes)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
