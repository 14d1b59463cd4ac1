package entity

// WalletBalance is a single holding as reported by a balance source.
// Duplicates by currency are legal and processed independently.
type WalletBalance struct {
	Currency string  `json:"currency" yaml:"currency"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Chain    Chain   `json:"chain" yaml:"chain"`
}
