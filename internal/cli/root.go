package cli

import (
	"fmt"

	"github.com/AlexZinkM/sol-cli/internal/client"
	"github.com/AlexZinkM/sol-cli/internal/config"
	"github.com/AlexZinkM/sol-cli/internal/handler"
	"github.com/AlexZinkM/sol-cli/internal/logger"
	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands of one invocation
type app struct {
	verbose bool
	handler *handler.SolanaHandler
}

// NewRootCommand builds the command tree. Each subcommand maps to one handler method.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sol-cli",
		Short: "Query a Solana cluster and generate keypairs",
		Long: `sol-cli is a small client for a Solana cluster's JSON-RPC endpoint.

It reads cluster version and clock, token supply and account balances, and
generates keypairs from a new BIP-39 mnemonic.

The endpoint defaults to devnet and can be changed with SOLANA_RPC_URL.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              noArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log RPC calls and file paths to stderr")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", model.ErrConfig, err)
	})

	for _, cmd := range []*cobra.Command{
		a.clusterInfoCommand(),
		a.supplyCommand(),
		a.keyGenCommand(),
		a.balanceCommand(),
	} {
		root.AddCommand(cmd)
	}

	return root
}

// Execute runs the root command with os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// the root command only prints help
	if !cmd.HasParent() {
		return nil
	}

	if err := config.Init(); err != nil {
		return err
	}

	log, err := logger.New(a.verbose)
	if err != nil {
		return fmt.Errorf("%w: failed to create logger: %w", model.ErrConfig, err)
	}

	solanaClient := client.NewSolanaClient(config.GetSolanaRPCURL(), config.GetCommitment(), log)
	a.handler = handler.NewSolanaHandler(cmd.OutOrStdout(), solanaClient, log)
	return nil
}

// noArgs is cobra.NoArgs reported as a configuration error.
// On the root command it also reports unknown subcommands.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", model.ErrConfig, err)
	}
	return nil
}
