package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var showAchievements bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show stats, profile and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			p := svc.Profile()
			stats := svc.CurrentStats()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", p.XPTotal))
			fmt.Fprintln(out, ui.LabelValue("Diamonds", svc.Diamonds()))
			if meta := svc.TimeMeta(); meta.TimeSuspicious {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Clock rollback detected; timestamps may be unreliable."))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			fmt.Fprintf(out, "- Mood       %s %d\n", ui.StatBar(stats.Mood), stats.Mood)
			fmt.Fprintf(out, "- Energy     %s %d\n", ui.StatBar(stats.Energy), stats.Energy)
			fmt.Fprintf(out, "- Motivation %s %d\n", ui.StatBar(stats.Motivation), stats.Motivation)
			fmt.Fprintf(out, "- Stress     %s %d\n", ui.StatBar(stats.Stress), stats.Stress)
			fmt.Fprintf(out, "- Momentum   %s %d\n", ui.StatBar(stats.Momentum), stats.Momentum)
			fmt.Fprintf(out, "- Money      $%d\n", stats.Money)
			fmt.Fprintf(out, "- Sleep      %dh\n", stats.SleepHours)
			fmt.Fprintln(out, "")

			agg := svc.AggregatedStats()
			fmt.Fprintln(out, ui.H2.Render("📜 Lifetime"))
			fmt.Fprintln(out, ui.LabelValue("Days finished", agg.TotalDays))
			fmt.Fprintln(out, ui.LabelValue("Quests completed", agg.CompletedQuests))
			fmt.Fprintln(out, ui.LabelValue("Quests failed", agg.FailedQuests))
			fmt.Fprintln(out, ui.LabelValue("Diamonds earned", agg.DiamondsEarned))

			if showAchievements {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("🏆 Achievements"))
				for _, a := range svc.Achievements() {
					mark := ui.Muted.Render(fmt.Sprintf("%3d%%", a.Progress))
					if a.Unlocked {
						mark = ui.Gold.Render("100%")
					}
					fmt.Fprintf(out, "- %s %s %s %s\n", a.Icon, mark, a.Name, ui.Dim.Render(a.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAchievements, "achievements", "a", false, "Include achievement progress")
	return cmd
}
