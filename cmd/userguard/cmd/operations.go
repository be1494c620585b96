package cmd

import (
	"fmt"

	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/spf13/cobra"
)

func newOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations accepted by validate",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			for _, op := range entity.Operations {
				fmt.Fprintln(c.OutOrStdout(), op)
			}
			return nil
		},
	}
}
