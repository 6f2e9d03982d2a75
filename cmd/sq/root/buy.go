package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item with available points",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item-id is required")
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

			id := args[0]
			if !repo.PurchaseItem(ctx, id) {
				// One boolean covers unknown, owned, locked, and short funds.
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Purchase failed (unknown, owned, locked, or not enough points)."))
				return nil
			}

			state := repo.Load(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconShop+" Purchased "+id))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%s %d pts", ui.IconCoin, state.UserData.AvailablePoints)))
			return nil
		},
	}

	return cmd
}
