package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/engine"
	"gamelife/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage the reward shop",
	}
	cmd.AddCommand(newShopAddCmd(), newShopBuyCmd(), newShopListCmd(), newShopRmCmd(), newShopHistoryCmd())
	return cmd
}

func newShopAddCmd() *cobra.Command {
	var desc, narrative string
	var cost int
	var statPairs []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a shop item",
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

			it := svc.CreateShopItem(engine.ShopItemInput{
				Name:            args[0],
				Description:     desc,
				Cost:            cost,
				Effect:          effect,
				NarrativeAction: narrative,
			})
			if err := svc.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconDiamond, "Item added"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", it.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().IntVarP(&cost, "cost", "c", 10, "Diamond cost")
	cmd.Flags().StringArrayVar(&statPairs, "stat", nil, "Stat effect name=value, repeatable")
	cmd.Flags().StringVar(&narrative, "flavor", "", "Narrative line shown on purchase")
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Buy an item with diamonds",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			bought := svc.Purchase(args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			if !bought {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Not enough diamonds (or unknown item)."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDiamond+" Purchased."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", svc.Diamonds()))
			return nil
		},
	}
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shop items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDiamond, fmt.Sprintf("Shop (balance %d)", svc.Diamonds())))
			items := svc.ShopItemList()
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, it := range items {
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.Muted.Render(shortID(it.ID)), it.Name,
					ui.Gold.Render(fmt.Sprintf("%d💎", it.Cost)))
			}
			return nil
		},
	}
}

func newShopRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a shop item",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.DeleteShopItem(args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted."))
			return nil
		},
	}
}

func newShopHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show purchase history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Purchases"))
			history := svc.PurchaseHistory()
			if len(history) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, p := range history {
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.Dim.Render(p.PurchaseDate), p.ItemName,
					ui.Gold.Render(fmt.Sprintf("-%d💎", p.Cost)))
			}
			return nil
		},
	}
}
