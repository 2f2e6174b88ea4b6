package wallet

import "context"

// StubProvider is a no-op provider for development; replace with the TON
// connector when the payment backend lands.
type StubProvider struct{}

func (StubProvider) Balance(context.Context, string) (*Balance, error) {
	return &Balance{Amount: 0, Currency: "TON"}, nil
}
