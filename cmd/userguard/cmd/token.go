package cmd

import (
	"errors"
	"fmt"

	"github.com/shandysiswandi/userguard/internal/pkg/clock"
	"github.com/shandysiswandi/userguard/internal/pkg/jwt"
	"github.com/shandysiswandi/userguard/internal/pkg/uid"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	subject string
	scopes  []string
}

func newTokenCommand(root *rootOptions) *cobra.Command {
	opts := &tokenOptions{}

	c := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for calling the HTTP API",
		Long: `Signs a token with the jwt.* settings of the service config.

Examples:
  userguard token --subject reporting-job
  userguard token --subject ops --scope userguard.bulk`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if opts.subject == "" {
				return errors.New("--subject is required")
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			defer cfg.Close()

			signer, err := jwt.NewHS512(jwt.Config{
				Secret:    []byte(cfg.GetString("jwt.secret")),
				Issuer:    cfg.GetString("jwt.issuer"),
				Audiences: cfg.GetArray("jwt.audiences"),
				TTL:       cfg.GetMinute("jwt.ttl_minutes"),
				Clock:     clock.New(),
				UUID:      uid.NewUUID(),
			})
			if err != nil {
				return err
			}

			token, err := signer.Generate(opts.subject, opts.scopes...)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), token)
			return nil
		},
	}

	c.Flags().StringVar(&opts.subject, "subject", "", "client id written to the sub claim")
	c.Flags().StringSliceVar(&opts.scopes, "scope", nil, "scope to grant, repeatable")

	return c
}
