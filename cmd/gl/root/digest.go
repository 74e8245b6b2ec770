package root

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"gamelife/internal/config"
	"gamelife/internal/relay"
	"gamelife/internal/ui"
)

func newDigestCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print a short nudge about pending work",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			now := time.Now()
			if !force && !relay.CanNotify(now, cfg.QuietHoursStart, cfg.QuietHoursEnd) {
				return nil // quiet hours, stay silent
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d := relay.BuildDigest(svc)
			rng := rand.New(rand.NewSource(now.UnixNano()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(relay.PickMessage(rng, d)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Ignore quiet hours")
	return cmd
}
