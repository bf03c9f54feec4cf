package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"twelveweeks/internal/ui"
)

func newGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage 12-week goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			goals, err := svc.ListGoals()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTarget, "Goals"))
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none — add one with: twy goals add <title>)"))
				return nil
			}
			for _, goal := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", goal.Title, ui.Muted.Render("("+goal.ID+")"))
				if goal.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Dim.Render(goal.Description))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(
		newGoalsAddCmd(),
		newGoalsEditCmd(),
		newGoalsRmCmd(),
	)

	return cmd
}

func newGoalsAddCmd() *cobra.Command {
	var desc string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			goal, err := svc.AddGoal(args[0], desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), goal.Title, ui.Muted.Render("("+goal.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Optional description")

	return cmd
}

func newGoalsEditCmd() *cobra.Command {
	var desc string

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Edit a goal's title and description",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and title are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			goal, err := svc.UpdateGoal(args[0], args[1], desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconPencil+" Updated"), goal.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")

	return cmd
}

func newGoalsRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := openService()
			if err != nil {
				return err
			}
			defer cleanup()

			if !yes && !confirm(cmd, fmt.Sprintf("Delete goal %s?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing deleted."))
				return nil
			}
			if err := svc.DeleteGoal(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconTrash+" Deleted"), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
