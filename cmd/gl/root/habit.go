package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/engine"
	"gamelife/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(newHabitAddCmd(), newHabitDoCmd(), newHabitListCmd(), newHabitRmCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var desc string
	var xp, diamonds int
	var statPairs []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := parseDelta(statPairs)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h := svc.CreateHabit(engine.HabitInput{
				Name:        args[0],
				Description: desc,
				Effect: engine.HabitEffect{
					Stats:    stats,
					XP:       xp,
					Diamonds: diamonds,
				},
			})
			if err := svc.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLoop, "Habit added"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", h.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().IntVar(&xp, "xp", 0, "XP bonus per execution (capped at 10)")
	cmd.Flags().IntVar(&diamonds, "diamonds", 0, "Diamond bonus per execution (capped at 10)")
	cmd.Flags().StringArrayVar(&statPairs, "stat", nil, "Stat effect name=value, repeatable")
	return cmd
}

func newHabitDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <id>",
		Short: "Execute a habit",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.ExecuteHabit(args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Habit executed."))
			return nil
		},
	}
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconLoop, "Habits"))
			habits := svc.HabitList()
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, h := range habits {
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.Muted.Render(shortID(h.ID)), h.Name,
					ui.Dim.Render(fmt.Sprintf("(xp=%d 💎=%d)", h.Effect.XP, h.Effect.Diamonds)))
			}
			return nil
		},
	}
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.DeleteHabit(args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted."))
			return nil
		},
	}
}
