package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient  *rpc.Client
	rpcURL     string
	commitment rpc.CommitmentType // for supply and balance reads
	log        *zap.Logger
}

// NewSolanaClient creates a new Solana client for the given endpoint.
func NewSolanaClient(rpcURL string, commitment rpc.CommitmentType, log *zap.Logger) *SolanaClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &SolanaClient{
		rpcClient:  rpc.New(rpcURL),
		rpcURL:     rpcURL,
		commitment: commitment,
		log:        log,
	}
}

// GetVersion returns the solana-core version reported by the node
func (c *SolanaClient) GetVersion(ctx context.Context) (string, error) {
	c.log.Debug("getVersion", zap.String("endpoint", c.rpcURL))

	version, err := c.rpcClient.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get version: %w", model.ErrRemote, err)
	}
	return version.SolanaCore, nil
}

// GetClock reads the clock sysvar at finalized commitment.
// Returns the slot of the response context and the decoded clock.
func (c *SolanaClient) GetClock(ctx context.Context) (slot uint64, clock *Clock, err error) {
	c.log.Debug("getAccountInfo",
		zap.String("endpoint", c.rpcURL),
		zap.Stringer("account", solana.SysVarClockPubkey),
	)

	result, err := c.rpcClient.GetAccountInfoWithOpts(ctx, solana.SysVarClockPubkey, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return 0, nil, &model.AccountNotFoundError{Address: solana.SysVarClockPubkey.String()}
		}
		return 0, nil, fmt.Errorf("%w: failed to get clock account: %w", model.ErrRemote, err)
	}
	if result == nil || result.Value == nil {
		return 0, nil, &model.AccountNotFoundError{Address: solana.SysVarClockPubkey.String()}
	}

	clock, err = DecodeClock(result.Value.Data.GetBinary())
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", model.ErrRemote, err)
	}

	return result.Context.Slot, clock, nil
}

// GetSupply gets total, circulating and non-circulating supply in lamports
func (c *SolanaClient) GetSupply(ctx context.Context) (total, circulating, nonCirculating uint64, err error) {
	c.log.Debug("getSupply",
		zap.String("endpoint", c.rpcURL),
		zap.String("commitment", string(c.commitment)),
	)

	supply, err := c.rpcClient.GetSupply(ctx, c.commitment)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: failed to get supply: %w", model.ErrRemote, err)
	}
	if supply == nil || supply.Value == nil {
		return 0, 0, 0, fmt.Errorf("%w: empty supply response", model.ErrRemote)
	}

	return supply.Value.Total, supply.Value.Circulating, supply.Value.NonCirculating, nil
}

// GetBalance gets SOL balance in lamports
func (c *SolanaClient) GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	c.log.Debug("getBalance",
		zap.String("endpoint", c.rpcURL),
		zap.Stringer("account", owner),
		zap.String("commitment", string(c.commitment)),
	)

	balance, err := c.rpcClient.GetBalance(ctx, owner, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get SOL balance: %w", model.ErrRemote, err)
	}
	return balance.Value, nil
}
