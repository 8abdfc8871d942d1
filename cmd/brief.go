package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ddefia/defiav1/internal/digest"
	"github.com/ddefia/defiav1/internal/insight"

	"github.com/spf13/cobra"
)

var (
	briefCategory string
	briefTop      int
)

// briefCmd prints the daily intelligence brief for a category.
var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Daily intelligence brief: ranked category news with AI analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		lc, err := newFeedClient(cfg)
		if err != nil {
			return err
		}
		analyst, err := insight.New(cfg.Insight)
		if err != nil {
			slog.Warn("brief: analysis disabled", "err", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		b := &digest.Builder{Feed: lc, Analyst: analyst}
		out, err := b.Brief(ctx, briefCategory, briefTop, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(briefCmd)
	briefCmd.Flags().StringVarP(&briefCategory, "category", "c", "cryptocurrencies", "category to brief on")
	briefCmd.Flags().IntVar(&briefTop, "top", 5, "number of top stories to show")
}
