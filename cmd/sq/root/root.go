package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sq",
	Short:         "StudyQuest — local-first gamified study tracker",
	Long:          "StudyQuest is a local-first CLI/TUI study tracker: complete monthly learning tasks, earn points and streaks, and spend points in the reward shop.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newListCmd(),
		newStatsCmd(),
		newShopCmd(),
		newBuyCmd(),
		newProfileCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
