package root

import (
	"context"

	"github.com/spf13/cobra"

	"gamelife/internal/config"
	"gamelife/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			go svc.RunAutosave(ctx, cfg.AutosaveInterval)
			go svc.RunClock(ctx, cfg.ClockTickInterval)

			if err := tui.RunDashboard(ctx, svc, cmd.OutOrStdout()); err != nil {
				return err
			}
			return svc.Save(context.Background())
		},
	}

	return cmd
}
