package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/uservalidation/outbound/db"
	"github.com/spf13/cobra"
)

func newMigrateCommand(root *rootOptions) *cobra.Command {
	var timeout time.Duration

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Create the bulk upload tables",
		Long:  "Applies the bulk process schema to database.url. Statements are idempotent.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			defer cfg.Close()

			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			pool, err := pgxpool.New(ctx, cfg.GetString("database.url"))
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.NewDB(pool, instrument.NewNoop()).Migrate(ctx); err != nil {
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), "schema applied")
			return nil
		},
	}

	c.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")

	return c
}
