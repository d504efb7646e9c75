package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) clusterInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster-info",
		Short: "Show cluster version, current slot and on-chain time",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.ClusterInfo(cmd.Context())
		},
	}
}
