package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) supplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Show total, circulating and non-circulating SOL supply",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.Supply(cmd.Context())
		},
	}
}
