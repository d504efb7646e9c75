package handler

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/AlexZinkM/sol-cli/internal/client"
	"github.com/AlexZinkM/sol-cli/solana"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// SolanaHandler runs one subcommand and prints its result to out
type SolanaHandler struct {
	out    io.Writer
	client *client.SolanaClient
	log    *zap.Logger
}

// KeyGenRequest holds key-gen arguments
type KeyGenRequest struct {
	Output     string
	WordCount  int
	Passphrase string
	QROutput   string
}

// NewSolanaHandler creates a new SolanaHandler
func NewSolanaHandler(out io.Writer, solanaClient *client.SolanaClient, log *zap.Logger) *SolanaHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SolanaHandler{
		out:    out,
		client: solanaClient,
		log:    log,
	}
}

// status prints the line announcing what is about to run
func (h *SolanaHandler) status(format string, a ...any) {
	color.New(color.FgCyan).Fprintf(h.out, format+"\n", a...)
}

// ClusterInfo handles cluster-info
func (h *SolanaHandler) ClusterInfo(ctx context.Context) error {
	h.status("Get cluster info")

	info, err := solana.GetClusterInfo(ctx, h.client)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Cluster version: %s\n", info.Version)
	fmt.Fprintf(h.out, "Block: %d, Time: %s\n", info.Slot, info.Time.Format(time.DateTime))
	return nil
}

// Supply handles supply
func (h *SolanaHandler) Supply(ctx context.Context) error {
	h.status("Get supply info")

	supply, err := solana.GetSupply(ctx, h.client)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Total supply: %s SOL\nCirculating: %s SOL\nNon-Circulating: %s SOL\n",
		supply.Total, supply.Circulating, supply.NonCirculating)
	return nil
}

// KeyGen handles key-gen. Makes no RPC calls.
func (h *SolanaHandler) KeyGen(req KeyGenRequest) error {
	h.status("Generate keys, output to: %s", req.Output)
	h.log.Debug("generating keypair",
		zap.String("output", req.Output),
		zap.Int("word_count", req.WordCount),
		zap.Bool("passphrase", req.Passphrase != ""),
	)

	resp, err := solana.GenerateKeypair(req.Output, req.WordCount, req.Passphrase, req.QROutput)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Mnemonic: %s\n", resp.Mnemonic)
	fmt.Fprintf(h.out, "Public key: %s\n", resp.Address)
	return nil
}

// Balance handles balance for either an address or a wallet file
func (h *SolanaHandler) Balance(ctx context.Context, address, walletFile string) error {
	if walletFile != "" {
		h.status("Get balance for Wallet file: %s", walletFile)
	} else {
		h.status("Get balance for address: %s", address)
	}

	balance, err := solana.GetBalance(ctx, h.client, address, walletFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Balance for %s: %s\n", balance.Address, balance.SOL)
	return nil
}
