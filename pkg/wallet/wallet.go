// Package wallet defines the external wallet/payment provider contract.
// Balances live with the provider; this service only reads them.
package wallet

import "context"

// Balance is what the provider reports for a connected wallet.
type Balance struct {
	Amount   float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// Provider resolves a wallet id to its balance.
type Provider interface {
	Balance(ctx context.Context, walletID string) (*Balance, error)
}
