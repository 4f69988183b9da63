package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create database indexes",
	Long:  `Create the recipe text index and the username lookup indexes. Existing indexes are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close(context.Background()) //nolint: errcheck

		if err := db.EnsureIndexes(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Database indexes created successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
