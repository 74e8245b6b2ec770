package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/engine"
	"gamelife/internal/ui"
)

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage the day lifecycle",
	}
	cmd.AddCommand(newDayStartCmd(), newDaySyncCmd(), newDayMorningCmd(), newDayShowCmd())
	return cmd
}

func newDayStartCmd() *cobra.Command {
	var theme string
	var mood, money, energy, motivation, stress, momentum, sleep int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start today with your morning stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			initial := engine.Stats{
				Mood:       mood,
				Money:      money,
				Energy:     energy,
				Motivation: motivation,
				Stress:     stress,
				Momentum:   momentum,
				SleepHours: sleep,
			}
			svc.StartDay(initial, engine.DayTheme(theme))
			if err := svc.Save(ctx); err != nil {
				return err
			}

			day, _ := svc.Today()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSun, "Day started"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", ui.ThemeLabel(string(day.Theme))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Quests activated", len(svc.TodayQuests())))
			return nil
		},
	}

	def := engine.DefaultStats()
	cmd.Flags().StringVarP(&theme, "theme", "t", "", "Day theme (hustle_mode|zen_focus|procrastinator_slayer|night_owl|momentum_boost|mystic_vision)")
	cmd.Flags().IntVar(&mood, "mood", def.Mood, "Mood (0-100)")
	cmd.Flags().IntVar(&money, "money", def.Money, "Money on hand")
	cmd.Flags().IntVar(&energy, "energy", def.Energy, "Energy (0-100)")
	cmd.Flags().IntVar(&motivation, "motivation", def.Motivation, "Motivation (0-100)")
	cmd.Flags().IntVar(&stress, "stress", def.Stress, "Stress (0-100)")
	cmd.Flags().IntVar(&momentum, "momentum", def.Momentum, "Momentum (0-100)")
	cmd.Flags().IntVar(&sleep, "sleep", def.SleepHours, "Sleep hours (0-12)")
	return cmd
}

func newDaySyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile past days and overdue quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// openService already synced; persist the result.
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Synced."))
			return nil
		},
	}
}

func newDayMorningCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "morning",
		Short: "Claim the morning routine bonus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			before, _ := svc.Today()
			svc.CompleteMorningRoutine()
			after, _ := svc.Today()
			if err := svc.Save(ctx); err != nil {
				return err
			}

			if !before.MorningRoutineCompleted && after.MorningRoutineCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Morning routine done: +5 XP, +2 💎"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing claimed (day not active or already done)."))
			}
			return nil
		},
	}
}

func newDayShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's day record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, ok := svc.Today()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No day record for today."))
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSun, "Today — "+day.Date))
			fmt.Fprintln(out, ui.LabelValue("Status", ui.StatusText(string(day.Status))))
			fmt.Fprintln(out, ui.LabelValue("Theme", ui.ThemeLabel(string(day.Theme))))
			fmt.Fprintln(out, ui.LabelValue("XP gained", day.XPGained))
			fmt.Fprintln(out, ui.LabelValue("Diamonds earned", day.DiamondsEarned))
			if day.MorningRoutineCompleted {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Morning routine completed"))
			}
			return nil
		},
	}
}
