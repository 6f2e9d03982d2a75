package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show profile, points and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, cleanup, err := openRepo(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := repo.Load(ctx)
			u := state.UserData

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Profile"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Joined", u.JoinedDate.Format("Jan 2, 2006")))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Available points", fmt.Sprintf("%s %d", ui.IconCoin, u.AvailablePoints)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Lifetime points", u.TotalPoints))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completed tasks", u.CompletedTasks))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconStreak, u.CurrentStreak, u.LongestStreak)))
			if len(u.PurchasedItems) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Owned items", len(u.PurchasedItems)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			achievements := repo.Achievements(ctx)
			earned := 0
			for _, a := range achievements {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, earned, len(achievements))))
			for _, a := range achievements {
				if a.Earned {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", a.Icon, a.Name, ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Dim.Render(fmt.Sprintf("- %s %s", ui.IconLock, a.Description)))
				}
			}
			return nil
		},
	}

	return cmd
}
