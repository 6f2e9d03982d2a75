package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyquest/internal/engine"
	"studyquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var category string
	var month int
	var year int
	var due string
	var image string
	var points int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to a month",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, cleanup, err := openRepo(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			if month == 0 {
				month = int(now.Month())
			}
			if year == 0 {
				year = now.Year()
			}

			draft := engine.TaskDraft{
				Title:       args[0],
				Description: desc,
				Month:       month,
				Year:        year,
				Category:    engine.ParseTaskCategory(category),
			}
			if cmd.Flags().Changed("points") {
				draft.Points = &points
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
				}
				draft.DueDate = &d
			}
			if image != "" {
				draft.ImageURL = &image
			}

			task := repo.AddTask(ctx, draft)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				task.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %d pts, %s %d)", task.Category, task.Points, engine.MonthName(task.Month), task.Year)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", task.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "D", "", "Task description")
	cmd.Flags().StringVarP(&category, "category", "c", "lesson", "Category (lesson|homework|project|exam|activity)")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&image, "image", "", "Image URL")
	cmd.Flags().IntVarP(&points, "points", "p", 0, "Point value (default: category base value)")

	return cmd
}
