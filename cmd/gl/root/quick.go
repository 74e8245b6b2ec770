package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/engine"
	"gamelife/internal/ui"
)

func newQuickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Manage quick actions",
	}
	cmd.AddCommand(newQuickAddCmd(), newQuickDoCmd(), newQuickListCmd(), newQuickRmCmd())
	return cmd
}

func newQuickAddCmd() *cobra.Command {
	var desc string
	var statPairs []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a quick action",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			effect, err := parseDelta(statPairs)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a := svc.CreateQuickAction(engine.QuickActionInput{
				Name:        args[0],
				Description: desc,
				Effect:      effect,
			})
			if err := svc.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBolt, "Quick action added"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", a.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringArrayVar(&statPairs, "stat", nil, "Stat effect name=value, repeatable")
	return cmd
}

func newQuickDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <id>",
		Short: "Apply a quick action",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.ApplyQuickAction(args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconBolt+" Applied."))
			return nil
		},
	}
}

func newQuickListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List quick actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Quick Actions"))
			actions := svc.QuickActionList()
			if len(actions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, a := range actions {
				fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render(shortID(a.ID)), a.Name)
			}
			return nil
		},
	}
}

func newQuickRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quick action",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.DeleteQuickAction(args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted."))
			return nil
		},
	}
}
