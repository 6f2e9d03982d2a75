package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyquest/internal/engine"
	"studyquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var month int
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a month",
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

			tasks := repo.TasksForPeriod(ctx, month, year)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, fmt.Sprintf("Tasks — %s %d", engine.MonthName(month), year)))
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks this month)"))
				return nil
			}
			for _, t := range tasks {
				box := "[ ]"
				if t.Completed {
					box = "[x]"
				}
				line := fmt.Sprintf("%s %s %s %s", box, t.Title, ui.CategoryText(t.Category), ui.Muted.Render(fmt.Sprintf("%d pts", t.Points)))
				if t.DueDate != nil && !t.Completed {
					line += " " + ui.Warn.Render("due "+t.DueDate.Format("Jan 2"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				fmt.Fprintln(cmd.OutOrStdout(), ui.Dim.Render("    "+t.ID))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current)")

	return cmd
}
