package solana

import (
	"context"

	"github.com/AlexZinkM/sol-cli/internal/client"
	"github.com/AlexZinkM/sol-cli/internal/common"
	"github.com/AlexZinkM/sol-cli/internal/model"
)

// GetSupply gets supply figures converted from lamports to SOL
func GetSupply(ctx context.Context, solanaClient *client.SolanaClient) (*model.SupplyResponse, error) {
	total, circulating, nonCirculating, err := solanaClient.GetSupply(ctx)
	if err != nil {
		return nil, err
	}

	return &model.SupplyResponse{
		Total:          common.LamportsToSOL(total),
		Circulating:    common.LamportsToSOL(circulating),
		NonCirculating: common.LamportsToSOL(nonCirculating),
	}, nil
}
