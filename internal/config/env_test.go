package config

import (
	"os"
	"testing"

	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestInitDefaults(t *testing.T) {
	unsetenv(t, "SOLANA_RPC_URL")
	unsetenv(t, "SOLANA_COMMITMENT")

	require.NoError(t, Init())
	assert.Equal(t, "https://api.devnet.solana.com", GetSolanaRPCURL())
	assert.Equal(t, rpc.CommitmentFinalized, GetCommitment())
}

func TestInitFromEnv(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "http://127.0.0.1:8899")
	t.Setenv("SOLANA_COMMITMENT", "confirmed")

	require.NoError(t, Init())
	assert.Equal(t, "http://127.0.0.1:8899", GetSolanaRPCURL())
	assert.Equal(t, rpc.CommitmentConfirmed, GetCommitment())
}

func TestInitInvalidCommitment(t *testing.T) {
	t.Setenv("SOLANA_COMMITMENT", "max")

	err := Init()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfig)
}

func TestPromptForPassphraseNotTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}

	_, err := PromptForPassphrase()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConfig)
	assert.Contains(t, err.Error(), "stdin is not a terminal")
}

// unsetenv removes key for the duration of the test; t.Setenv restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
