package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			res := repo.CompleteTask(ctx, args[0])
			if res == nil {
				// Unknown id and already-done look the same on purpose.
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d pts\n", ui.Good.Render(ui.IconDone+" Completed"), res.PointsAwarded)
			streak := fmt.Sprintf("%s %d", ui.IconStreak, res.CurrentStreak)
			if res.StreakRecord {
				streak += " " + ui.BadgeRecord
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", streak))
			return nil
		},
	}

	return cmd
}
