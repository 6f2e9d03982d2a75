package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyquest/internal/engine"
	"studyquest/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var month int
	var year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly statistics",
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

			stats := repo.MonthlyStatistics(ctx, month, year)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, fmt.Sprintf("Statistics — %s %d", engine.MonthName(month), year)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks", fmt.Sprintf("%d/%d completed", stats.CompletedTasks, stats.TotalTasks)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completion", fmt.Sprintf("%d%%", stats.CompletionRate)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points earned", stats.PointsEarned))
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current)")

	return cmd
}
