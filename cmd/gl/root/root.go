package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gamelife/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gl",
	Short:         "GameLife — gamified personal day tracker",
	Long:          "GameLife is a local-first CLI/TUI life tracker: start your day, run quests and habits, earn XP and diamonds.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newDayCmd(),
		newQuestCmd(),
		newHabitCmd(),
		newQuickCmd(),
		newShopCmd(),
		newEpicCmd(),
		newStatusCmd(),
		newStatsCmd(),
		newSaveCmd(),
		newDigestCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
