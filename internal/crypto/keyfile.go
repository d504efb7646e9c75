package crypto

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/gagliardetto/solana-go"
)

// WriteKeypairFile writes key in the Solana CLI keygen format (a JSON array of the
// 64 private key bytes). An existing file is overwritten. Missing parent
// directories are created.
func WriteKeypairFile(filePath string, key solana.PrivateKey) error {
	if len(key) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: invalid private key length %d", model.ErrInput, len(key))
	}

	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("%w: failed to create directory: %w", model.ErrIO, err)
		}
	}

	// []byte would be marshalled as base64, the keygen format needs numbers
	values := make([]int, len(key))
	for i, b := range key {
		values[i] = int(b)
	}
	defer clear(values)

	fileData, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal keypair: %w", model.ErrIO, err)
	}
	defer clear(fileData)

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: failed to write file: %w", model.ErrIO, err)
	}
	if _, err := f.Write(fileData); err != nil {
		f.Close()
		return fmt.Errorf("%w: failed to write file: %w", model.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to write file: %w", model.ErrIO, err)
	}

	return nil
}

// ReadKeypairFile reads a keypair written by WriteKeypairFile or by solana-keygen.
// Caller should clear the returned key after use.
func ReadKeypairFile(filePath string) (solana.PrivateKey, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s does not exist", model.ErrIO, filePath)
		}
		return nil, fmt.Errorf("%w: failed to stat file: %w", model.ErrIO, err)
	}

	if fileInfo.Size() == 0 {
		return nil, fmt.Errorf("%w: file %s is empty", model.ErrIO, filePath)
	}

	key, err := solana.PrivateKeyFromSolanaKeygenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode keypair file: %w", model.ErrIO, err)
	}

	if len(key) != ed25519.PrivateKeySize {
		clear(key)
		return nil, fmt.Errorf("%w: keypair file %s holds %d bytes, expected %d", model.ErrIO, filePath, len(key), ed25519.PrivateKeySize)
	}

	return key, nil
}

// ReadWalletAddress reads only the public key from a keypair file.
// The private half is wiped before returning.
func ReadWalletAddress(filePath string) (solana.PublicKey, error) {
	key, err := ReadKeypairFile(filePath)
	if err != nil {
		return solana.PublicKey{}, err
	}
	defer clear(key)

	return key.PublicKey(), nil
}
