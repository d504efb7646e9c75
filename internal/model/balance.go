package model

// SolanaBalanceResponse is the result of a balance query
type SolanaBalanceResponse struct {
	Address  string
	Lamports uint64
	SOL      string
}
