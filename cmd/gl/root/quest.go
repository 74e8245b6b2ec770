package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamelife/internal/engine"
	"gamelife/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestListCmd(),
		newQuestCompleteCmd(),
		newQuestFailCmd(),
		newQuestDoCmd(),
		newQuestEarlyCmd(),
		newQuestReviveCmd(),
		newQuestMainCmd(),
		newQuestEditCmd(),
		newQuestRmCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var desc, category, date string
	var xp, diamonds, penaltyDiamonds int
	var statPairs, penaltyPairs []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest (dated or permanent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rewardStats, err := parseDelta(statPairs)
			if err != nil {
				return err
			}
			penalties, err := parseDelta(penaltyPairs)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q := svc.CreateQuest(engine.CreateQuestInput{
				Title:       args[0],
				Description: desc,
				Category:    engine.QuestCategory(category),
				PlannedDate: date,
				Rewards: engine.Rewards{
					Stats:    rewardStats,
					XP:       xp,
					Diamonds: diamonds,
				},
				Penalties:       penalties,
				PenaltyDiamonds: penaltyDiamonds,
			})
			if err := svc.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPlus, "Quest added"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", q.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Status", ui.StatusText(string(q.Status))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&category, "category", "c", string(engine.DefaultCategory), "Category (daily|main|side)")
	cmd.Flags().StringVar(&date, "date", "", "Planned date YYYY-MM-DD; empty makes the quest permanent")
	cmd.Flags().IntVar(&xp, "xp", 0, "XP reward (default 10)")
	cmd.Flags().IntVar(&diamonds, "diamonds", 0, "Diamond reward")
	cmd.Flags().StringArrayVar(&statPairs, "stat", nil, "Stat reward name=value, repeatable")
	cmd.Flags().StringArrayVar(&penaltyPairs, "penalty", nil, "Stat penalty name=value (positive cost), repeatable")
	cmd.Flags().IntVar(&penaltyDiamonds, "penalty-diamonds", 0, "Diamond penalty on failure")
	return cmd
}

func newQuestListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's quests (or all with --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests := svc.TodayQuests()
			title := "Today's Quests"
			if all {
				quests = svc.AllQuests()
				title = "All Quests"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, title))
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, q := range quests {
				star := ""
				if q.IsMainQuest {
					star = ui.Gold.Render("★ ")
				}
				date := q.PlannedDate
				if date == "" {
					date = "permanent"
				}
				fmt.Fprintf(out, "- %s%s %s %s %s\n",
					star, ui.Muted.Render(shortID(q.ID)), q.Title,
					ui.StatusText(string(q.Status)), ui.Dim.Render("("+date+")"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include every quest")
	return cmd
}

func newQuestCompleteCmd() *cobra.Command {
	return questActionCmd("complete <id>", "Complete an active quest",
		func(svc *engine.Service, id string) { svc.CompleteQuest(id) },
		"Completed.")
}

func newQuestFailCmd() *cobra.Command {
	var penaltyDiamonds int
	cmd := &cobra.Command{
		Use:   "fail <id>",
		Short: "Fail a pending quest, applying penalties",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.FailQuest(args[0], penaltyDiamonds)
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render("Failed."))
			return nil
		},
	}
	cmd.Flags().IntVar(&penaltyDiamonds, "diamonds", 0, "Extra diamond penalty")
	return cmd
}

func newQuestDoCmd() *cobra.Command {
	return questActionCmd("do <id>", "Execute a permanent quest",
		func(svc *engine.Service, id string) { svc.ExecuteQuest(id) },
		"Executed.")
}

func newQuestEarlyCmd() *cobra.Command {
	return questActionCmd("early <id>", "Claim a future quest's rewards today",
		func(svc *engine.Service, id string) { svc.CompleteQuestEarly(id) },
		"Rewards claimed early.")
}

func newQuestReviveCmd() *cobra.Command {
	return questActionCmd("revive <id>", "Spend 10 diamonds to revive a failed quest",
		func(svc *engine.Service, id string) { svc.UseSecondChance(id) },
		"Second chance used.")
}

func newQuestMainCmd() *cobra.Command {
	return questActionCmd("main <id>", "Mark today's main quest (1.5x rewards)",
		func(svc *engine.Service, id string) { svc.SetMainQuest(id) },
		"Main quest set.")
}

func newQuestEditCmd() *cobra.Command {
	var title, desc, category, date string
	var xp, diamonds int
	var statPairs, penaltyPairs []string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a planned or active quest",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := engine.UpdateQuestInput{
				Title:       title,
				Description: desc,
				Category:    engine.QuestCategory(category),
				PlannedDate: date,
			}
			if cmd.Flags().Changed("xp") || cmd.Flags().Changed("diamonds") || len(statPairs) > 0 {
				stats, err := parseDelta(statPairs)
				if err != nil {
					return err
				}
				in.Rewards = &engine.Rewards{Stats: stats, XP: xp, Diamonds: diamonds}
			}
			if len(penaltyPairs) > 0 {
				penalties, err := parseDelta(penaltyPairs)
				if err != nil {
					return err
				}
				in.Penalties = &penalties
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.UpdateQuest(args[0], in)
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category (daily|main|side)")
	cmd.Flags().StringVar(&date, "date", "", "New planned date YYYY-MM-DD")
	cmd.Flags().IntVar(&xp, "xp", 0, "New XP reward")
	cmd.Flags().IntVar(&diamonds, "diamonds", 0, "New diamond reward")
	cmd.Flags().StringArrayVar(&statPairs, "stat", nil, "New stat reward name=value, repeatable")
	cmd.Flags().StringArrayVar(&penaltyPairs, "penalty", nil, "New stat penalty name=value, repeatable")
	return cmd
}

func newQuestRmCmd() *cobra.Command {
	return questActionCmd("rm <id>", "Delete a quest without penalties",
		func(svc *engine.Service, id string) { svc.DeleteQuest(id) },
		"Deleted.")
}

func questActionCmd(use, short string, action func(*engine.Service, string), doneMsg string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			action(svc, args[0])
			if err := svc.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" "+doneMsg))
			return nil
		},
	}
}

func requireID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}
