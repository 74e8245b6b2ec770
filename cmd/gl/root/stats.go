package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <name=delta>...",
		Short: "Adjust stats directly, e.g. gl stats mood=+5 stress=-10",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one name=delta pair is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDelta(args)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.ApplyStatsDelta(d)
			if err := svc.Save(ctx); err != nil {
				return err
			}

			stats := svc.CurrentStats()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Stats updated"))
			fmt.Fprintf(out, "- Mood       %s %d\n", ui.StatBar(stats.Mood), stats.Mood)
			fmt.Fprintf(out, "- Energy     %s %d\n", ui.StatBar(stats.Energy), stats.Energy)
			fmt.Fprintf(out, "- Motivation %s %d\n", ui.StatBar(stats.Motivation), stats.Motivation)
			fmt.Fprintf(out, "- Stress     %s %d\n", ui.StatBar(stats.Stress), stats.Stress)
			fmt.Fprintf(out, "- Momentum   %s %d\n", ui.StatBar(stats.Momentum), stats.Momentum)
			fmt.Fprintf(out, "- Money      $%d\n", stats.Money)
			fmt.Fprintf(out, "- Sleep      %dh\n", stats.SleepHours)
			return nil
		},
	}
}
