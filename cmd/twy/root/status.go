package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"twelveweeks/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the scoreboard dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := svc.Status()
			if err != nil {
				return err
			}

			loc, err := time.LoadLocation(cfg.Timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "The 12-Week Year"))
			fmt.Fprintln(out, ui.Muted.Render(ui.IconClock+" "+ui.FormatClock(time.Now().In(loc))))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.LabelValue("Base Monday", report.BaseMonday))
			fmt.Fprintln(out, ui.LabelValue("Current week", fmt.Sprintf("%d (%s → %s)", report.CurrentWeek, report.WeekStart, report.WeekEnd)))
			fmt.Fprintln(out, ui.LabelValue("Week score", ui.ScoreText(report.CurrentWeekScore, report.HasCurrentScore)))
			fmt.Fprintln(out, ui.LabelValue("Goals", report.GoalCount))
			fmt.Fprintln(out, "")

			if len(report.Weeks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no weekly summaries saved yet)"))
				return nil
			}

			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Saved weeks"))
			for _, week := range report.Weeks {
				line := fmt.Sprintf("- week %2d  %s → %s  %s", week.WeekNumber, week.Start, week.End, ui.ScoreText(week.Score, true))
				if week.Reflection != "" {
					line += "  " + ui.Muted.Render(week.Reflection)
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Overall average", ui.ScoreText(report.OverallAverage, true)))
			return nil
		},
	}

	return cmd
}
