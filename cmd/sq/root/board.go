package root

import (
	"context"

	"github.com/spf13/cobra"

	"studyquest/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI month board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			repo, cleanup, err := openRepo(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, repo, cmd.OutOrStdout())
		},
	}

	return cmd
}
