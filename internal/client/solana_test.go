package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlexZinkM/sol-cli/internal/model"
	"github.com/AlexZinkM/sol-cli/internal/rpctest"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*SolanaClient, *rpctest.Server) {
	t.Helper()
	srv := rpctest.NewServer(t)
	return NewSolanaClient(srv.URL, rpc.CommitmentFinalized, nil), srv
}

func TestGetVersion(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle("getVersion", rpctest.Version("1.18.26"))

	version, err := c.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.18.26", version)
}

func TestGetVersionRemoteError(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.GetVersion(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrRemote)
}

func TestGetClock(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle("getAccountInfo", rpctest.ClockAccount(345_000_001, 345_000_000, 1_718_000_000))

	slot, clock, err := c.GetClock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(345_000_001), slot)
	assert.Equal(t, uint64(345_000_000), clock.Slot)
	assert.Equal(t, int64(1_718_000_000), clock.UnixTimestamp)
	assert.Equal(t, uint64(600), clock.Epoch)
	assert.Equal(t, time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC), clock.Time())
}

func TestGetClockMissingAccount(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle("getAccountInfo", rpctest.MissingAccount(1))

	_, _, err := c.GetClock(context.Background())
	require.Error(t, err)
	assert.True(t, model.IsAccountNotFoundError(err))
	assert.True(t, errors.Is(err, model.ErrRemote))
	assert.Contains(t, err.Error(), solana.SysVarClockPubkey.String())
}

func TestGetSupply(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle("getSupply", rpctest.Supply(7, 600_000_000_000_000_000, 500_000_000_000_000_000, 100_000_000_000_000_000))

	total, circulating, nonCirculating, err := c.GetSupply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(600_000_000_000_000_000), total)
	assert.Equal(t, uint64(500_000_000_000_000_000), circulating)
	assert.Equal(t, uint64(100_000_000_000_000_000), nonCirculating)
}

func TestGetBalance(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle("getBalance", rpctest.Balance(9, 1_500_000_000))

	lamports, err := c.GetBalance(context.Background(), solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000_000), lamports)
	assert.Equal(t, []string{"getBalance"}, srv.Calls())
}

func TestGetBalanceRemoteError(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.GetBalance(context.Background(), solana.NewWallet().PublicKey())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrRemote)
}
