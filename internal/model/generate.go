package model

// GenerateResponse is the result of key-gen.
// Mnemonic is shown once and is the only way to recover the keypair.
type GenerateResponse struct {
	Mnemonic string
	Address  string
}
