package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ddefia/defiav1/internal/digest"

	"github.com/spf13/cobra"
)

// trendsCmd prints the raw trends snapshot: topics and categories in
// feed order plus the altcoin leaderboard with majors removed.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Snapshot of social topics, categories and top altcoins by AltRank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		lc, err := newFeedClient(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		b := &digest.Builder{Feed: lc}
		out, err := b.Snapshot(ctx, cfg.Trends.IgnoredSymbols)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}
