package config

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// There is no command-line flag for the endpoint; SOLANA_RPC_URL is the only override.
type Config struct {
	SolanaRPCURL string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	Commitment   string `envconfig:"SOLANA_COMMITMENT" default:"finalized"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("%w: failed to process config: %w", model.ErrConfig, err)
	}
	if _, err := parseCommitment(c.Commitment); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetCommitment returns the commitment level used for supply and balance reads
func GetCommitment() rpc.CommitmentType {
	c, _ := parseCommitment(Get().Commitment)
	return c
}

func parseCommitment(s string) (rpc.CommitmentType, error) {
	switch c := rpc.CommitmentType(s); c {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return c, nil
	default:
		return "", fmt.Errorf("%w: SOLANA_COMMITMENT must be processed, confirmed or finalized, got %q", model.ErrConfig, s)
	}
}

// PromptForPassphrase prompts the user for the mnemonic passphrase in the terminal.
// The passphrase is read without echoing (hidden input). An empty passphrase is allowed.
func PromptForPassphrase() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%w: stdin is not a terminal: run interactively to enter passphrase", model.ErrConfig)
	}
	fmt.Fprint(os.Stderr, "Enter mnemonic passphrase: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read passphrase: %w", model.ErrIO, err)
	}
	defer clear(raw)

	return string(raw), nil
}
