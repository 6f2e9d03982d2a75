package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the reward shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, cleanup, err := openRepo(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := repo.Load(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Reward Shop"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%s %d pts", ui.IconCoin, state.UserData.AvailablePoints)))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			for _, item := range state.ShopItems {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s\n",
					item.Name,
					ui.Gold.Render(fmt.Sprintf("%d pts", item.Price)),
					ui.ShopStatus(item.Purchased, item.Unlocked),
					ui.Muted.Render("["+item.ID+"]"))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Dim.Render("    "+item.Description))
			}
			return nil
		},
	}

	return cmd
}
