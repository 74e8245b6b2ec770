package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/engine"
	"gamelife/internal/ui"
)

func newEpicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epic",
		Short: "Manage the epic quest",
	}
	cmd.AddCommand(newEpicCreateCmd(), newEpicShowCmd(), newEpicStepCmd(), newEpicResetCmd(), newEpicRmCmd())
	return cmd
}

func newEpicCreateCmd() *cobra.Command {
	var desc string
	var steps []string
	var xp, diamonds int

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create the epic quest, replacing any existing one",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(steps) == 0 {
				return errors.New("at least one --step is required")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.EpicQuestInput{
				Title:       args[0],
				Description: desc,
			}
			for _, s := range steps {
				in.Steps = append(in.Steps, engine.EpicStepInput{Title: s})
			}
			if xp > 0 || diamonds > 0 {
				in.FinalRewards = &engine.Rewards{XP: xp, Diamonds: diamonds}
			}

			eq := svc.CreateEpicQuest(in)
			if err := svc.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMountain, "Epic quest created"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Steps", len(eq.Steps)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "Step title, repeatable and ordered")
	cmd.Flags().IntVar(&xp, "xp", 0, "Final XP reward")
	cmd.Flags().IntVar(&diamonds, "diamonds", 0, "Final diamond reward")
	return cmd
}

func newEpicShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the epic quest and its progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			eq := svc.EpicQuestView()
			out := cmd.OutOrStdout()
			if eq == nil {
				fmt.Fprintln(out, ui.Muted.Render("No epic quest. Create one with `gl epic create`."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconMountain, eq.Title))
			fmt.Fprintln(out, ui.LabelValue("Progress", fmt.Sprintf("%d%%", svc.EpicProgress())))
			for i, st := range eq.Steps {
				mark := "☐"
				if st.Completed {
					mark = "☑"
				}
				cursor := "  "
				if i == eq.CurrentStepIndex {
					cursor = "> "
				}
				fmt.Fprintf(out, "%s%s %s %s\n", cursor, mark, ui.Muted.Render(shortID(st.ID)), st.Title)
			}
			return nil
		},
	}
}

func newEpicStepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step <step-id>",
		Short: "Complete the current epic quest step",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.CompleteEpicQuestStep(args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Step done."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", fmt.Sprintf("%d%%", svc.EpicProgress())))
			return nil
		},
	}
}

func newEpicResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset all epic quest steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.ResetEpicQuest()
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Steps reset."))
			return nil
		},
	}
}

func newEpicRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm",
		Short: "Delete the epic quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.DeleteEpicQuest()
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted."))
			return nil
		},
	}
}
