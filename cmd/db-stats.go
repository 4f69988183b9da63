package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dbStatsCmd = &cobra.Command{
	Use:   "db-stats",
	Short: "Show database statistics",
	Long:  `Display document counts per collection and the newest recipe and review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close(context.Background()) //nolint: errcheck

		stats, err := db.GetStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get database stats: %w", err)
		}

		fmt.Println("Database Statistics:")
		fmt.Printf("Users: %s\n", humanize.Comma(stats.Users))
		fmt.Printf("Recipes: %s\n", humanize.Comma(stats.Recipes))
		fmt.Printf("Reviews: %s\n", humanize.Comma(stats.Reviews))

		if stats.LatestRecipe != nil {
			fmt.Printf("Latest Recipe: %q by %s (%s, %s)\n",
				stats.LatestRecipe.Title, stats.LatestRecipe.Username,
				stats.LatestRecipe.CreatedAt.Format(time.RFC3339), humanize.Time(stats.LatestRecipe.CreatedAt))
		}
		if stats.LatestReview != nil {
			fmt.Printf("Latest Review: of %q by %s (%s, %s)\n",
				stats.LatestReview.RecipeName, stats.LatestReview.Username,
				stats.LatestReview.CreatedAt.Format(time.RFC3339), humanize.Time(stats.LatestReview.CreatedAt))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbStatsCmd)
}
