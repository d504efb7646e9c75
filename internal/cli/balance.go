package cli

import (
	"fmt"

	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/spf13/cobra"
)

func (a *app) balanceCommand() *cobra.Command {
	var walletFile string

	cmd := &cobra.Command{
		Use:   "balance [<address>] [--wallet-file <path>]",
		Short: "Show the SOL balance of an address or a keypair file",
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) > 1:
				return fmt.Errorf("%w: accepts at most one address, received %d", model.ErrConfig, len(args))
			case len(args) == 1 && walletFile != "":
				return fmt.Errorf("%w: the address argument cannot be used with --wallet-file", model.ErrConfig)
			case len(args) == 0 && walletFile == "":
				return fmt.Errorf("%w: an address or --wallet-file is required", model.ErrConfig)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var address string
			if len(args) == 1 {
				address = args[0]
			}
			return a.handler.Balance(cmd.Context(), address, walletFile)
		},
	}

	cmd.Flags().StringVar(&walletFile, "wallet-file", "", "Keypair file whose public key is queried")

	return cmd
}
