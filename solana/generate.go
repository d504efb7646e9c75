package solana

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/sol-cli/internal/crypto"
	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/skip2/go-qrcode"
)

// GenerateKeypair generates a new mnemonic, derives a keypair from it and saves
// the keypair to filePath. The mnemonic is returned to the caller and never written.
// If qrPath is not empty a PNG QR code of the address is written there before the
// keypair file; on any error no keypair file is written.
func GenerateKeypair(filePath string, wordCount int, passphrase, qrPath string) (*model.GenerateResponse, error) {
	// Reject the word count before any entropy is consumed or any file is touched
	if _, err := crypto.EntropyBitsForWordCount(wordCount); err != nil {
		return nil, err
	}

	mnemonic, err := crypto.NewMnemonic(wordCount)
	if err != nil {
		return nil, err
	}
	if n := crypto.WordCount(mnemonic); n != wordCount {
		return nil, fmt.Errorf("%w: generated mnemonic has %d words, requested %d", model.ErrIO, n, wordCount)
	}

	key, err := crypto.KeypairFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keypair: %w", err)
	}
	defer clear(key)

	address := key.PublicKey().String()

	if qrPath != "" {
		png, err := generateQRCode(address)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(qrPath, png, 0644); err != nil {
			return nil, fmt.Errorf("%w: failed to write QR code: %w", model.ErrIO, err)
		}
	}

	if err := crypto.WriteKeypairFile(filePath, key); err != nil {
		return nil, err
	}

	return &model.GenerateResponse{
		Mnemonic: mnemonic,
		Address:  address,
	}, nil
}

// generateQRCode generates QR code of address as PNG
func generateQRCode(address string) ([]byte, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}
