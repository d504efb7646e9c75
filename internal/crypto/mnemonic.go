package crypto

import (
	"crypto/ed25519"
	"fmt"
	"slices"
	"strings"

	"github.com/AlexZinkM/sol-cli/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip39"
)

// entropyBits maps a supported mnemonic word count to its BIP-39 entropy size.
var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// SupportedWordCounts returns the mnemonic lengths accepted by NewMnemonic, ascending.
func SupportedWordCounts() []int {
	counts := make([]int, 0, len(entropyBits))
	for n := range entropyBits {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	return counts
}

// EntropyBitsForWordCount returns the entropy size for a mnemonic of wordCount words.
func EntropyBitsForWordCount(wordCount int) (int, error) {
	bits, ok := entropyBits[wordCount]
	if !ok {
		return 0, fmt.Errorf("%w: invalid mnemonic word count %d, valid values are %v", model.ErrConfig, wordCount, SupportedWordCounts())
	}
	return bits, nil
}

// NewMnemonic generates a random English BIP-39 mnemonic of wordCount words.
// Entropy comes from crypto/rand. The word count is validated before any entropy is read.
func NewMnemonic(wordCount int) (string, error) {
	bits, err := EntropyBitsForWordCount(wordCount)
	if err != nil {
		return "", err
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate entropy: %w", model.ErrIO, err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate mnemonic: %w", model.ErrIO, err)
	}
	return mnemonic, nil
}

// NewSeed derives the 64-byte BIP-39 seed. An empty passphrase is still fed
// into the derivation as the empty string.
func NewSeed(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid mnemonic: %w", model.ErrInput, err)
	}
	return seed, nil
}

// KeypairFromSeed derives an ed25519 keypair from the first 32 bytes of seed,
// the same way the Solana CLI derives a keypair from a BIP-39 seed.
func KeypairFromSeed(seed []byte) (solana.PrivateKey, error) {
	if len(seed) < ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed too short: %d bytes, need at least %d", model.ErrInput, len(seed), ed25519.SeedSize)
	}
	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])), nil
}

// KeypairFromMnemonic runs seed derivation and keypair derivation in one step.
func KeypairFromMnemonic(mnemonic, passphrase string) (solana.PrivateKey, error) {
	seed, err := NewSeed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	return KeypairFromSeed(seed)
}

// WordCount returns the number of words in a mnemonic phrase.
func WordCount(mnemonic string) int {
	return len(strings.Fields(mnemonic))
}
