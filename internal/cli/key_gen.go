package cli

import (
	"fmt"

	"github.com/AlexZinkM/sol-cli/internal/config"
	"github.com/AlexZinkM/sol-cli/internal/handler"
	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/spf13/cobra"
)

func (a *app) keyGenCommand() *cobra.Command {
	var (
		req              handler.KeyGenRequest
		promptPassphrase bool
	)

	cmd := &cobra.Command{
		Use:   "key-gen",
		Short: "Generate a keypair from a new mnemonic",
		Long: `Generate a new BIP-39 mnemonic, derive a keypair from it and write the
keypair to the output file in the Solana CLI keygen format.

The mnemonic is printed once and is not saved anywhere. Write it down: it is
the only way to recover the keypair.

Example:
  sol-cli key-gen --output ~/.config/solana/dev.json
  sol-cli key-gen -o dev.json -m 24 --prompt-passphrase`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := noArgs(cmd, args); err != nil {
				return err
			}
			if req.Output == "" {
				return fmt.Errorf("%w: required flag \"output\" not set", model.ErrConfig)
			}
			if promptPassphrase && cmd.Flags().Changed("passphrase") {
				return fmt.Errorf("%w: --passphrase and --prompt-passphrase cannot be used together", model.ErrConfig)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if promptPassphrase {
				passphrase, err := config.PromptForPassphrase()
				if err != nil {
					return err
				}
				req.Passphrase = passphrase
			}
			return a.handler.KeyGen(req)
		},
	}

	cmd.Flags().StringVarP(&req.Output, "output", "o", "", "Output file path for keypair file.")
	cmd.Flags().IntVarP(&req.WordCount, "mnemonic-word-count", "m", 12, "How many words to generate for the mnemonic. Valid values are: 12, 15, 18, 21, and 24.")
	cmd.Flags().StringVarP(&req.Passphrase, "passphrase", "p", "", "Passphrase to use for extra security.")
	cmd.Flags().BoolVar(&promptPassphrase, "prompt-passphrase", false, "Read the passphrase from the terminal without echo.")
	cmd.Flags().StringVar(&req.QROutput, "qr-output", "", "Also write a PNG QR code of the public key to this path.")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("passphrase", "prompt-passphrase")

	return cmd
}
