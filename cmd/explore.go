package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ddefia/defiav1/internal/digest"

	"github.com/spf13/cobra"
)

// exploreCmd prints the trend discovery report: ranked topics and
// categories plus a deep dive into the leader of each.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Discover trending topics and market sectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		lc, err := newFeedClient(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		b := &digest.Builder{Feed: lc}
		out, err := b.Discovery(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
