package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ddefia/defiav1/internal/config"
	"github.com/ddefia/defiav1/internal/digest"

	"github.com/spf13/cobra"
)

// verifyCmd probes the LunarCrush endpoints the reports depend on and
// prints one diagnostic block per check.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Probe the LunarCrush API endpoints and show sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		lc, err := newFeedClient(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		b := &digest.Builder{Feed: lc}
		out, err := b.Verification(ctx, config.Mask(cfg.LunarCrush.APIKey))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
