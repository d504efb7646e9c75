package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/sol-cli/internal/client"
	"github.com/AlexZinkM/sol-cli/internal/common"
	"github.com/AlexZinkM/sol-cli/internal/crypto"
	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/gagliardetto/solana-go"
)

// ResolveAddress returns the account to query: the literal address, or the
// public key stored in walletFile. Exactly one of them must be set.
func ResolveAddress(address, walletFile string) (solana.PublicKey, error) {
	switch {
	case address != "" && walletFile != "":
		return solana.PublicKey{}, fmt.Errorf("%w: address and wallet file are mutually exclusive", model.ErrConfig)
	case address != "":
		pubkey, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("%w: invalid Solana address %q: %w", model.ErrInput, address, err)
		}
		return pubkey, nil
	case walletFile != "":
		pubkey, err := crypto.ReadWalletAddress(walletFile)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("failed to read wallet address: %w", err)
		}
		return pubkey, nil
	default:
		return solana.PublicKey{}, fmt.Errorf("%w: an address or a wallet file is required", model.ErrConfig)
	}
}

// GetBalance gets SOL balance of an address or of the keypair in walletFile.
// The address is resolved before any RPC call is made.
func GetBalance(ctx context.Context, solanaClient *client.SolanaClient, address, walletFile string) (*model.SolanaBalanceResponse, error) {
	pubkey, err := ResolveAddress(address, walletFile)
	if err != nil {
		return nil, err
	}

	lamports, err := solanaClient.GetBalance(ctx, pubkey)
	if err != nil {
		return nil, err
	}

	return &model.SolanaBalanceResponse{
		Address:  pubkey.String(),
		Lamports: lamports,
		SOL:      common.LamportsToSOL(lamports),
	}, nil
}
