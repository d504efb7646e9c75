package model

// SupplyResponse holds supply figures converted to SOL
type SupplyResponse struct {
	Total          string
	Circulating    string
	NonCirculating string
}
