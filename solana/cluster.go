package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/sol-cli/internal/client"
	"github.com/AlexZinkM/sol-cli/internal/model"
)

// GetClusterInfo gets node version, current slot and on-chain time.
// Either both reads succeed or an error is returned.
func GetClusterInfo(ctx context.Context, solanaClient *client.SolanaClient) (*model.ClusterInfoResponse, error) {
	version, err := solanaClient.GetVersion(ctx)
	if err != nil {
		return nil, err
	}

	slot, clock, err := solanaClient.GetClock(ctx)
	if err != nil {
		if model.IsAccountNotFoundError(err) {
			return nil, fmt.Errorf("cluster has no clock sysvar: %w", err)
		}
		return nil, fmt.Errorf("failed to read cluster clock: %w", err)
	}

	return &model.ClusterInfoResponse{
		Version: version,
		Slot:    slot,
		Time:    clock.Time(),
	}, nil
}
